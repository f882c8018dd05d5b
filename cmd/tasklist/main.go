package main

import (
	"flag"
	"fmt"
	"os"

	"tasklist/internal/config"
	"tasklist/internal/storage"
	"tasklist/internal/task"
	"tasklist/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run returns instead of exiting so the store is always closed.
func run(args []string) error {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	configFlag := fs.String("config", "", "path to config.toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config.LoadEnv()
	cfg, err := config.LoadOrCreate(config.ResolveConfigPath(*configFlag))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openStore(cfg.Backend)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	if err := ui.Run(store, cfg); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func openStore(backend string) (task.Store, error) {
	if backend == config.BackendSQLite {
		return storage.Open()
	}
	return task.NewList(), nil
}
