package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Manage and buy rewards",
	}
	cmd.AddCommand(newShopAddCmd(), newShopListCmd(), newShopBuyCmd(), newShopRmCmd())
	return cmd
}

func newShopAddCmd() *cobra.Command {
	var cost int
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reward, err := svc.CreateReward(engine.RewardInput{Title: args[0], Cost: cost, Category: category})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconGift+" Added"), reward.Title, ui.Muted.Render(fmt.Sprintf("(%d pts)", reward.Cost)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", 50, "Cost in positive points")
	cmd.Flags().StringVar(&category, "category", "", "Category")

	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			balance := svc.Player().PositiveBalance
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGift, "Reward Shop"), ui.Muted.Render(fmt.Sprintf("(balance %d)", balance)))
			for _, r := range svc.Rewards() {
				affordable := ui.Good.Render("✔")
				if r.Cost > balance {
					affordable = ui.Muted.Render("✘")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s  %s\n", affordable, ui.Key.Render(r.ID), r.Title, ui.Gold.Render(fmt.Sprintf("%d pts", r.Cost)))
			}
			return nil
		},
	}
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <id>",
		Short: "Buy a reward with positive points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.PurchaseReward(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconGift+" Enjoy:"), res.Reward.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", res.Balance))
			return nil
		},
	}
}

func newShopRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteReward(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Removed"), args[0])
			return nil
		},
	}
}
