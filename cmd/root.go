package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// appFs is the filesystem every probe and manifest read goes through.
	appFs afero.Fs = afero.NewOsFs()

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sourcecheck",
	Short: "Check that expected project source files exist",
	Long: `sourcecheck lists the source files a project is expected to contain,
reports which of them exist on disk, and prints the steps for adding them to
the Xcode project.

Run without a subcommand to print the report (same as "sourcecheck check").`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runCheck,
}

// Execute runs the root command, exiting 1 on error. SIGINT and SIGTERM
// cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .sourcecheck.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("base-dir", "", "directory containing the project folder")
	flags.String("project", "", "project folder name")
	flags.String("manifest", "", "TOML manifest overriding the built-in file list (default sourcecheck.toml)")
	flags.Bool("strict", false, "exit non-zero when any file is missing")

	for key, flag := range map[string]string{
		"verbose":  "verbose",
		"base_dir": "base-dir",
		"project":  "project",
		"manifest": "manifest",
		"strict":   "strict",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".sourcecheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SOURCECHECK")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// initLogger builds the diagnostic logger. Diagnostics go to stderr so the
// report on stdout stays clean; only warnings show unless --verbose is set.
func initLogger(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if viper.GetBool("verbose") {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}
