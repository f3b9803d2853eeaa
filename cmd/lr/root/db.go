package root

import (
	"context"

	"github.com/saportinsta65/life-rpg/internal/config"
	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc := engine.NewService(storage.NewSnapshotStore(db, cfg.SnapshotKey))
	if err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
