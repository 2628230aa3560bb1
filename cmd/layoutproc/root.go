package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	debug   bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "layoutproc",
	Short: "Post processing for document layout analysis results",
	Long: `layoutproc filters the labeled region detections produced by a document
layout analysis model and regroups extracted text to a character budget.

Detections are passed as JSON on stdin or from a file:
  [{"label": "text", "box": [x_min, y_min, x_max, y_max]}, ...]`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./layoutproc.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debug, "debug", false, "enable debug logging",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger = newLogger(debug)
	}

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(titlesCmd)
}

// initConfig reads in the config file and ENV variables if set
func initConfig() {

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("layoutproc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("layoutproc")
	viper.AutomaticEnv()

	// a missing config file is fine, flags and defaults apply
	_ = viper.ReadInConfig()
}

// newLogger creates the CLI logger
func newLogger(debug bool) *zap.Logger {

	config := zap.NewProductionConfig()

	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	config.DisableStacktrace = true

	logger, err := config.Build()

	if err != nil {
		panic("failed to initialise logging: " + err.Error())
	}

	return logger
}
