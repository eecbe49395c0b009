package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitter-badger/matryoshka/calc"
)

var (
	evalJsonOutput bool
	outPath        string
	showTree       bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [paths...]",
	Short: "Evaluate expression files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine(showTree)
		if err != nil {
			logger.Fatal("Failed to initialize evaluator", zap.Error(err))
		}

		runEvalProcess(ctx, logger, engine, args, evalJsonOutput, outPath)
	},
}

func init() {
	evalCmd.Flags().BoolVar(&evalJsonOutput, "json", false, "Output results in JSON format")
	evalCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	evalCmd.Flags().BoolVar(&showTree, "tree", false, "Render a value tree with every result")
}

// newEngine builds the evaluator from the configured file. Without an
// explicit --config the default configuration file is used when it exists.
func newEngine(tree bool) (*calc.Evaluator, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	if path == "" {
		return calc.NewFromConfig(calc.Config{Tree: tree}), nil
	}

	config, err := calc.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	config.Tree = config.Tree || tree
	return calc.NewFromConfig(config), nil
}

func runEvalProcess(ctx context.Context, logger *zap.Logger, engine calc.Engine, paths []string, isJson bool, jsonOutput string) {
	results, err := calc.ProcessFiles(ctx, logger, engine, paths, calc.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResults(logger, results, isJson, jsonOutput)
}

func printResults(logger *zap.Logger, results []calc.Result, isJson bool, jsonOutput string) {
	if !isJson {
		// text output
		for _, result := range results {
			if result.Filename != "" {
				fmt.Printf("%s: %s = %d\n", result.Filename, result.Expr, result.Value)
			} else {
				fmt.Printf("%s = %d\n", result.Expr, result.Value)
			}
			if result.Tree != "" {
				fmt.Println(result.Tree)
			}
		}
		return
	}

	// JSON output
	d, err := json.Marshal(results)
	if err != nil {
		logger.Error("Error marshalling results to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
	} else {
		f, err := os.Create(jsonOutput)
		if err != nil {
			logger.Error("Error creating JSON output file", zap.Error(err))
			return
		}
		defer f.Close()
		if _, err := f.Write(d); err != nil {
			logger.Error("Error writing JSON output file", zap.Error(err))
		}
	}
}
