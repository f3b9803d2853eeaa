package engine

import (
	"errors"
	"testing"
	"time"
)

func TestEnsureWeeklyBossIsStable(t *testing.T) {
	svc := newTestService(t)
	setClock(svc, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)) // ISO week 40

	boss, err := svc.EnsureWeeklyBoss()
	if err != nil {
		t.Fatalf("EnsureWeeklyBoss: %v", err)
	}
	if boss.Week != "2025-W40" {
		t.Fatalf("week=%q, want 2025-W40", boss.Week)
	}
	if boss.HP != BossHP || boss.Damage != 0 || boss.Defeated {
		t.Fatalf("fresh boss wrong: %+v", boss)
	}
	if len(boss.Requirements) != 3 {
		t.Fatalf("requirements=%d, want 3", len(boss.Requirements))
	}
	if boss.Name != bossRoster[40%len(bossRoster)] {
		t.Fatalf("name=%q not from rotation", boss.Name)
	}

	// Ensure does not rotate, even across a week boundary.
	setClock(svc, time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC))
	same, err := svc.EnsureWeeklyBoss()
	if err != nil {
		t.Fatalf("EnsureWeeklyBoss: %v", err)
	}
	if same.Week != boss.Week || same.Name != boss.Name {
		t.Fatalf("ensure replaced the boss: %+v", same)
	}

	// Rolling is the explicit rotation.
	fresh, err := svc.RollWeeklyBoss()
	if err != nil {
		t.Fatalf("RollWeeklyBoss: %v", err)
	}
	if fresh.Week != "2025-W41" {
		t.Fatalf("rolled week=%q, want 2025-W41", fresh.Week)
	}
}

func TestDamageBossDefeatsAtHP(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.EnsureWeeklyBoss(); err != nil {
		t.Fatalf("EnsureWeeklyBoss: %v", err)
	}

	boss, err := svc.DamageBoss(550)
	if err != nil {
		t.Fatalf("DamageBoss: %v", err)
	}
	if boss.Defeated {
		t.Fatalf("boss defeated at %d/%d", boss.Damage, boss.HP)
	}

	boss, err = svc.DamageBoss(50)
	if err != nil {
		t.Fatalf("DamageBoss: %v", err)
	}
	if !boss.Defeated || boss.Damage != 600 {
		t.Fatalf("boss should fall at exactly HP: %+v", boss)
	}
}

func TestCompleteBossRequirement(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.EnsureWeeklyBoss(); err != nil {
		t.Fatalf("EnsureWeeklyBoss: %v", err)
	}

	req, err := svc.CompleteBossRequirement(1)
	if err != nil {
		t.Fatalf("CompleteBossRequirement: %v", err)
	}
	if !req.Completed || req.Damage != 300 {
		t.Fatalf("requirement=%+v", req)
	}

	// Marking a requirement done does not, by itself, hurt the boss.
	if boss := svc.WeeklyBossState(); boss.Damage != 0 {
		t.Fatalf("damage=%d, want 0", boss.Damage)
	}

	var ve ValidationError
	if _, err := svc.CompleteBossRequirement(7); !errors.As(err, &ve) {
		t.Fatalf("out-of-range index must fail validation, got %v", err)
	}

	// A requirement completes once; repeats are rejected so a caller
	// chaining DamageBoss cannot double-count it.
	if _, err := svc.CompleteBossRequirement(1); !errors.As(err, &ve) {
		t.Fatalf("duplicate completion must fail, got %v", err)
	}
	if boss := svc.WeeklyBossState(); boss.Damage != 0 {
		t.Fatalf("damage=%d after duplicate completion, want 0", boss.Damage)
	}
}

func TestBossOpsWithoutBoss(t *testing.T) {
	svc := newTestService(t)

	var nf NotFoundError
	if _, err := svc.DamageBoss(10); !errors.As(err, &nf) {
		t.Fatalf("damage without a boss must fail, got %v", err)
	}
	if _, err := svc.CompleteBossRequirement(0); !errors.As(err, &nf) {
		t.Fatalf("requirement without a boss must fail, got %v", err)
	}
	if boss := svc.WeeklyBossState(); boss != nil {
		t.Fatalf("no boss expected, got %+v", boss)
	}
}
