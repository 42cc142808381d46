package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/larder/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStorageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "List the stored keys and their sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Storage.Entries(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStorageEntries(entries, app.now()))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe storage and restore the default recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return errors.New("reset discards every recipe; pass --yes to confirm")
				}
				if err := newConfirmForm("Reset larder?", "Every recipe, the kitchen and the saved week are replaced by the defaults.", &yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing changed."))
					return nil
				}
			}

			if err := app.Storage.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("resetting storage: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Storage reset to the default recipes\n", formatter.StyleGreen.Render("✔"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}
