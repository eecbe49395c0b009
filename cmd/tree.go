package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitter-badger/matryoshka/calc"
)

var noColor bool

var treeCmd = &cobra.Command{
	Use:   "tree [paths...]",
	Short: "Render expression files as value-annotated trees",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		if noColor {
			color.NoColor = true
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine(true)
		if err != nil {
			logger.Fatal("Failed to initialize evaluator", zap.Error(err))
		}

		runTreeProcess(ctx, logger, engine, args)
	},
}

func init() {
	treeCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func runTreeProcess(ctx context.Context, logger *zap.Logger, engine calc.Engine, paths []string) {
	results, err := calc.ProcessFiles(ctx, logger, engine, paths, calc.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	for _, result := range results {
		if result.Filename != "" {
			fmt.Printf("%s:\n", result.Filename)
		}
		fmt.Println(result.Tree)
	}
}
