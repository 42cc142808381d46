package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/larder/internal/kitchen"
	"github.com/alexanderramin/larder/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Recipes  service.RecipeService
	Kitchen  service.KitchenService
	Week     service.WeekService
	Shopping service.ShoppingService
	Storage  service.StorageService

	// SelectionCapacity is the default staging limit for `kitchen select`.
	SelectionCapacity int
	// ShareTarget names the default sink for `shopping share`.
	ShareTarget string

	// LogLevel is raised to debug by --verbose when set.
	LogLevel *slog.LevelVar
	// Initialize runs once after flags are parsed, before any command.
	Initialize func(ctx context.Context)
	// IsInteractive reports whether forms and the selector may take over
	// the terminal.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) capacity() int {
	if a.SelectionCapacity < 1 {
		return kitchen.DefaultCapacity
	}
	return a.SelectionCapacity
}

// NewRootCmd creates the top-level "larder" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "larder",
		Short:         "Recipe catalog, kitchen, week planner and shopping list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && app.LogLevel != nil {
				app.LogLevel.Set(slog.LevelDebug)
			}
			if app.Initialize != nil {
				app.Initialize(cmd.Context())
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newRecipeCmd(app),
		newKitchenCmd(app),
		newWeekCmd(app),
		newShoppingCmd(app),
		newStorageCmd(app),
		newResetCmd(app),
	)

	return root
}
