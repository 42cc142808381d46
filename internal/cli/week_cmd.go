package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/larder/internal/cli/formatter"
	"github.com/alexanderramin/larder/internal/repository"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Plan Monday to Friday from the kitchen",
	}
	cmd.AddCommand(newWeekRandomizeCmd(app), newWeekShowCmd(app))
	return cmd
}

func newWeekRandomizeCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:     "randomize",
		Aliases: []string{"plan"},
		Short:   "Fill every meal slot with a kitchen recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan := app.Week.Randomize(ctx)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekPlan(plan))

			if !save {
				return nil
			}
			if err := app.Week.Save(ctx, plan); err != nil {
				return fmt.Errorf("saving week plan: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Saved. Run `larder week show` to see it again."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "keep this plan for `week show`")
	return cmd
}

func newWeekShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the last saved week plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Week.Last(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No saved plan. Run `larder week randomize --save`."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekPlan(plan))
			return nil
		},
	}
}
