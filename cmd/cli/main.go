package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/workplace/internal/app"
	"github.com/dmitrijs2005/workplace/internal/cli"
	"github.com/dmitrijs2005/workplace/internal/config"
	"github.com/dmitrijs2005/workplace/internal/logging"
	"github.com/dmitrijs2005/workplace/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.LoadConfig()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := logging.New(cfg.Env, logOut)

	repo, err := storage.Open(ctx, cfg.Storage, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repo.Close()

	manager := app.NewManager(repo, logger)
	if err := manager.Load(ctx); err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	repl := cli.NewApp(cfg, manager, logger, os.Stdin, os.Stdout)
	done := make(chan struct{})
	go func() {
		defer close(done)
		repl.Run(ctx)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		// Run is still blocked on stdin
		repl.Shutdown()
		fmt.Fprintln(os.Stdout)
		logger.Info(context.Background(), "interrupted, shutting down")
	}

	// ctx may already be cancelled here
	if err := manager.Save(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to save state", "error", err)
		return err
	}
	return nil
}

// openLog returns the log destination: the named file, or stderr.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
