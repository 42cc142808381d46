package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexanderramin/larder/internal/cli"
	"github.com/alexanderramin/larder/internal/config"
	"github.com/alexanderramin/larder/internal/db"
	"github.com/alexanderramin/larder/internal/repository"
	"github.com/alexanderramin/larder/internal/service"
	"github.com/alexanderramin/larder/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	level := new(slog.LevelVar)
	level.Set(cfg.SlogLevel())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Nil seed source means the bundled default recipes.
	st := store.New(repository.NewSQLiteKVRepo(database), db.NewSQLiteUnitOfWork(database), nil, logger)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Recipes:  service.NewRecipeService(st, observer),
		Kitchen:  service.NewKitchenService(st, nil, observer),
		Week:     service.NewWeekService(st, nil, observer),
		Shopping: service.NewShoppingService(st, observer),
		Storage:  service.NewStorageService(st, observer),

		SelectionCapacity: cfg.SelectionCapacity,
		ShareTarget:       cfg.ShareTarget,
		LogLevel:          level,
		Initialize:        st.Initialize,
	}

	app.IsInteractive = func() bool {
		in, out := os.Stdin.Fd(), os.Stdout.Fd()
		return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
			(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
