package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitter-badger/matryoshka/calc"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-evaluate expression files as they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths to watch")
			os.Exit(1)
		}

		engine, err := newEngine(false)
		if err != nil {
			logger.Fatal("Failed to initialize evaluator", zap.Error(err))
		}

		watcher, err := calc.NewWatcher(engine, logger, args, func(result calc.Result) {
			fmt.Printf("%s: %s = %d\n", result.Filename, result.Expr, result.Value)
		})
		if err != nil {
			logger.Fatal("Failed to initialize watcher", zap.Error(err))
		}

		if err := watcher.Start(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println("watching for changes; press Ctrl-C to stop")
		<-ctx.Done()

		if err := watcher.Stop(); err != nil {
			logger.Error("Failed to stop watching", zap.Error(err))
		}
	},
}
