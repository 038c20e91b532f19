// Package cli wires the survcmp commands.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brookluers/survcmp/internal/config"
)

var (
	cfgPath  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "survcmp",
		Short: "Compare survival curves across model fits",
		Long: `survcmp fits a Kaplan-Meier estimator and a Cox proportional hazards
model to a clinical dataset, imports survival curves fitted by outside
tools (e.g. a random survival forest), and harmonizes everything into
one long-format comparison table for reporting and plotting.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "survcmp.yaml",
		"study configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"log level (debug, info, warn, error)")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgPath)
}

func parseLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
