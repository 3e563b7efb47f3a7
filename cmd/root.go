package cmd

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yansircc/lochost/internal/config"
)

var (
	flagEnvFile string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "lochost",
	Short:         "Local Homestead site manager",
	Long:          "Add sites to a Laravel Homestead box: hosts file entry, site mapping, database and provisioning.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", config.DefaultEnvFile, "dotenv file with the Homestead settings")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig resolves the configuration, loading --env-file first.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(flagEnvFile, cmd.Flags().Changed("env-file"))
}

// newLogger builds a console logger on stderr; debug level with --verbose.
func newLogger() (*zap.Logger, error) {
	level := zap.InfoLevel
	if flagVerbose {
		level = zap.DebugLevel
	}
	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       true,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}
