package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "matr [paths...]",
	Short:            "matr - evaluate and unfold expression files",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'matr' is entered
			_ = cmd.Help()
			return
		}
		// Format: matr [path1 path2 ...] => behaves like the eval subcommand
		evalCmd.Run(evalCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for processing paths")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(factorCmd)
	rootCmd.AddCommand(watchCmd)
}
