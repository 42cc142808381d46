package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/larder/internal/cli/formatter"
	"github.com/alexanderramin/larder/internal/shopping"
	"github.com/spf13/cobra"
)

func newShoppingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shopping",
		Aliases: []string{"shop"},
		Short:   "Ingredients needed for the kitchen",
	}
	cmd.AddCommand(newShoppingListCmd(app), newShoppingShareCmd(app))
	return cmd
}

func newShoppingListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := app.Shopping.Build(cmd.Context(), shopping.Options{ExcludeChecked: !all})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShoppingList(list))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include recipes already cooked")
	return cmd
}

func newShoppingShareCmd(app *App) *cobra.Command {
	var (
		all bool
		to  string
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Copy the shopping list to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			target := to
			if !cmd.Flags().Changed("to") {
				target = app.ShareTarget
			}
			sharer, err := shopping.NewSharer(target, out)
			if err != nil {
				return err
			}

			list := app.Shopping.Build(ctx, shopping.Options{ExcludeChecked: !all})
			err = app.Shopping.Share(ctx, list, sharer)
			switch {
			case errors.Is(err, shopping.ErrShareUnavailable):
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(sharer.Name()+" unavailable, printing instead"))
				fmt.Fprintln(out, list.Format())
				return nil
			case err != nil:
				return err
			}

			if sharer.Name() == "clipboard" {
				fmt.Fprintf(out, "%s Copied %s to the clipboard\n",
					formatter.StyleGreen.Render("✔"), formatter.Plural(len(list.Items), "item", "items"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include recipes already cooked")
	cmd.Flags().StringVar(&to, "to", "clipboard", "share target: clipboard or stdout")
	return cmd
}
