package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yaoapp/callbacks/config"
	"github.com/yaoapp/callbacks/logger"
)

var log = logger.New("cmd")

// NewRootCommand builds the callbacks command tree.
func NewRootCommand() *cobra.Command {
	var envfile string

	root := &cobra.Command{
		Use:           "callbacks",
		Short:         "Register callables of different shapes and fire values at them",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVarP(&envfile, "env", "e", ".env", "env file to load before reading the environment")
	root.AddCommand(newFireCommand(&envfile))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		if config.LogOutput != nil {
			config.LogOutput.Close()
		}
		os.Exit(1)
	}
	if config.LogOutput != nil {
		config.LogOutput.Close()
	}
}
