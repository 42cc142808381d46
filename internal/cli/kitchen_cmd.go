package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/larder/internal/cli/formatter"
	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/kitchen"
	"github.com/alexanderramin/larder/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newKitchenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kitchen",
		Short: "Manage the recipes you are cooking from",
	}

	cmd.AddCommand(
		newKitchenListCmd(app),
		newKitchenAddCmd(app),
		newKitchenQuickAddCmd(app),
		newKitchenRemoveCmd(app),
		newKitchenCheckCmd(app),
		newKitchenSelectCmd(app),
	)

	return cmd
}

func newKitchenListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the kitchen, cooked recipes last",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatKitchen(app.Kitchen.List(cmd.Context())))
			return nil
		},
	}
}

func newKitchenAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <recipe>...",
		Short: "Copy catalog recipes into the kitchen",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			catalog := app.Recipes.List(ctx, service.RecipeFilter{})

			for _, ref := range args {
				r, err := resolveRecipe(catalog, ref)
				if err != nil {
					return err
				}
				added, err := app.Kitchen.Add(ctx, r.ID)
				if err != nil {
					return err
				}
				if added {
					fmt.Fprintf(out, "%s Added %s to the kitchen\n", formatter.StyleGreen.Render("✔"), formatter.Bold(r.Name))
				} else {
					fmt.Fprintf(out, "%s %s is already in the kitchen\n", formatter.Dim("·"), r.Name)
				}
			}
			return nil
		},
	}
}

func newKitchenQuickAddCmd(app *App) *cobra.Command {
	var (
		name         string
		ingredients  []string
		instructions string
		meal         domain.MealType
	)

	cmd := &cobra.Command{
		Use:   "quick-add",
		Short: "Create a recipe directly in the kitchen; ingredients optional",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.RecipeDraft{Name: name, Ingredients: ingredients, Instructions: instructions, MealType: meal}

			if name == "" && app.interactive() {
				in := recipeFormInput{MealType: meal}
				if err := newRecipeForm(&in, false).Run(); err != nil {
					return err
				}
				draft = in.draft()
			}

			r, err := app.Kitchen.QuickAdd(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeAdded(r, "kitchen"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "recipe name")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "ingredient (repeatable)")
	cmd.Flags().StringVar(&instructions, "instructions", "", "preparation steps")
	addMealFlag(cmd.Flags(), &meal, "meal type, default dinner")

	return cmd
}

func newKitchenRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <recipe>",
		Aliases: []string{"rm"},
		Short:   "Remove a recipe from the kitchen only",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolveRecipe(app.Kitchen.List(cmd.Context()), args[0])
			if err != nil {
				return err
			}
			if _, err := app.Kitchen.Remove(cmd.Context(), r.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s from the kitchen\n", formatter.StyleGreen.Render("✔"), formatter.Bold(r.Name))
			return nil
		},
	}
}

func newKitchenCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <recipe>",
		Short: "Mark a kitchen recipe as cooked, or back to cook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := resolveRecipe(app.Kitchen.List(ctx), args[0])
			if err != nil {
				return err
			}
			if _, err := app.Kitchen.ToggleChecked(ctx, r.ID); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatKitchen(app.Kitchen.List(ctx)))
			return nil
		},
	}
}

func newKitchenSelectCmd(app *App) *cobra.Command {
	var (
		random     int
		capacity   int
		clearFirst bool
	)

	cmd := &cobra.Command{
		Use:   "select [recipe...]",
		Short: "Choose which catalog recipes make up the kitchen",
		Long: "Stage a new kitchen starting from the current one, then save it.\n\n" +
			"Named recipes are toggled in or out of the staging area. --random fills it\n" +
			"with that many catalog recipes; --clear empties it first. With no arguments\n" +
			"on an interactive terminal an interactive selector opens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("capacity") {
				capacity = app.capacity()
			}
			sel := app.Kitchen.OpenSelection(capacity)

			noOps := len(args) == 0 && random == 0 && !clearFirst
			if noOps {
				if !app.interactive() {
					return errors.New("nothing to select: pass recipes, --random N or --clear (or run in a terminal)")
				}
				committed, err := runSelector(cmd.InOrStdin(), out, app.Kitchen, sel)
				if err != nil || !committed {
					if err == nil {
						fmt.Fprintln(out, formatter.Dim("Selection discarded."))
					}
					return err
				}
				return commitSelection(cmd, app, sel)
			}

			if clearFirst {
				sel.Clear()
			}
			if random > 0 {
				app.Kitchen.SelectRandom(sel, random)
			}
			if len(args) > 0 {
				catalog := app.Recipes.List(ctx, service.RecipeFilter{})
				for _, ref := range args {
					r, err := resolveRecipe(catalog, ref)
					if err != nil {
						return err
					}
					if !sel.Toggle(r) {
						fmt.Fprintf(out, "%s Limit of %d reached, %s was not added\n",
							formatter.StyleYellow.Render("●"), sel.Capacity(), formatter.Bold(r.Name))
					}
				}
			}
			return commitSelection(cmd, app, sel)
		},
	}

	cmd.Flags().IntVarP(&random, "random", "r", 0, "fill with N random catalog recipes")
	cmd.Flags().IntVarP(&capacity, "capacity", "n", 0, "staging limit (default from config)")
	cmd.Flags().BoolVar(&clearFirst, "clear", false, "start from an empty selection")

	return cmd
}

func commitSelection(cmd *cobra.Command, app *App, sel *kitchen.Selection) error {
	out := cmd.OutOrStdout()
	if err := app.Kitchen.CommitSelection(cmd.Context(), sel); err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatCapacityCounter(sel.Len(), sel.Capacity(), sel.CapacityExceeded()))
	fmt.Fprint(out, formatter.FormatKitchen(app.Kitchen.List(cmd.Context())))
	return nil
}

// runSelector runs the interactive selector and reports whether the user
// chose to save.
func runSelector(in io.Reader, out io.Writer, svc service.KitchenService, sel *kitchen.Selection) (bool, error) {
	p := tea.NewProgram(newSelectorModel(svc, sel), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("running selector: %w", err)
	}
	m, ok := final.(selectorModel)
	return ok && m.committed, nil
}
