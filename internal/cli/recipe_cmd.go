package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/larder/internal/cli/formatter"
	"github.com/alexanderramin/larder/internal/domain"
	"github.com/alexanderramin/larder/internal/service"
	"github.com/spf13/cobra"
)

func newRecipeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipe",
		Aliases: []string{"recipes"},
		Short:   "Manage the recipe catalog",
	}

	cmd.AddCommand(
		newRecipeAddCmd(app),
		newRecipeListCmd(app),
		newRecipeSearchCmd(app),
		newRecipeShowCmd(app),
		newRecipeRemoveCmd(app),
		newRecipeImportCmd(app),
	)

	return cmd
}

func newRecipeAddCmd(app *App) *cobra.Command {
	var (
		name         string
		ingredients  []string
		instructions string
		meal         domain.MealType
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe to the catalog",
		Long: "Add a recipe to the catalog. Without --name on an interactive terminal\n" +
			"a form asks for the fields instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.RecipeDraft{Name: name, Ingredients: ingredients, Instructions: instructions, MealType: meal}

			if name == "" && app.interactive() {
				in := recipeFormInput{MealType: meal}
				if err := newRecipeForm(&in, true).Run(); err != nil {
					return err
				}
				draft = in.draft()
			}

			r, err := app.Recipes.Add(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeAdded(r, "catalog"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "recipe name")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "ingredient (repeatable)")
	cmd.Flags().StringVar(&instructions, "instructions", "", "preparation steps")
	addMealFlag(cmd.Flags(), &meal, "meal type, default dinner")

	return cmd
}

func newRecipeListCmd(app *App) *cobra.Command {
	var meal domain.MealType

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List catalog recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes := app.Recipes.List(cmd.Context(), service.RecipeFilter{MealType: meal})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeList(recipes))
			return nil
		},
	}
	addMealFlag(cmd.Flags(), &meal, "only this meal type")

	return cmd
}

func newRecipeSearchCmd(app *App) *cobra.Command {
	var meal domain.MealType

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find recipes whose name contains query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			recipes := app.Recipes.List(cmd.Context(), service.RecipeFilter{Query: query, MealType: meal})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeList(recipes))
			return nil
		},
	}
	addMealFlag(cmd.Flags(), &meal, "only this meal type")

	return cmd
}

func newRecipeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe>",
		Short: "Show a recipe's ingredients and instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolveRecipe(app.Recipes.List(cmd.Context(), service.RecipeFilter{}), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeDetail(r))
			return nil
		},
	}
}

func newRecipeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <recipe>",
		Aliases: []string{"rm"},
		Short:   "Remove a recipe from the catalog (kitchen copies stay)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolveRecipe(app.Recipes.List(cmd.Context(), service.RecipeFilter{}), args[0])
			if err != nil {
				return err
			}
			if _, err := app.Recipes.Remove(cmd.Context(), r.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s from the catalog\n", formatter.StyleGreen.Render("✔"), formatter.Bold(r.Name))
			return nil
		},
	}
}

func newRecipeImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.html|->",
		Short: "Import a recipe from a saved web page",
		Long: "Import a recipe from a saved HTML page. schema.org JSON-LD and microdata\n" +
			"are understood; pages without them fall back to the first heading and lists.\n" +
			"Use - to read the page from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening page: %w", err)
				}
				defer f.Close()
				src = f
			}

			r, err := app.Recipes.ImportHTML(cmd.Context(), src)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeAdded(r, "catalog"))
			return nil
		},
	}
}
