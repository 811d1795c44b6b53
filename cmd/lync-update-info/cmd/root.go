package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/lync-update-info/internal/config"
	"github.com/oshokin/lync-update-info/internal/logger"
	"github.com/oshokin/lync-update-info/internal/output"
	"github.com/oshokin/lync-update-info/internal/service/resolver"
	"github.com/oshokin/lync-update-info/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// logLevel is the minimum level written to stderr.
	logLevel string

	// format of the result written to stdout.
	format string

	// rootCmd resolves the Lync update and prints it.
	rootCmd = &cobra.Command{
		Use:   "lync-update-info",
		Short: "Resolve the download URL and pkginfo of a Lync for Mac update",
		Long: "Query the Microsoft AutoUpdate feed for Lync, pick the latest update or the requested version, " +
			"and print its download URL, package name and pkginfo metadata.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &resolver.Options{
				ConfigPath: configPath,
				Flags:      cmd.Flags(),
				Format:     format,
				Output:     cmd.OutOrStdout(),
			}

			return resolver.Run(ctx, options)
		},
	}

	// configCmd prints the effective configuration.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
)

// Execute runs the lync-update-info CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.ErrorKV(context.Background(), "Command failed", "error", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	defaults := config.Default()

	rootCmd.Flags().StringVarP(&format, "format", "f", string(output.FormatPlist),
		"output format: "+strings.Join(output.Formats(), ", "))

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.String("culture-code", defaults.CultureCode, "culture code of the localized feed, e.g. 0409 for en-US")
	flags.String("base-url", "", "feed URL; overrides --culture-code")
	flags.String("version", defaults.Version, "update version to resolve, or \"latest\"")
	flags.String("update-name", defaults.UpdateName, "pkginfo name and prefix of requires entries")
	flags.String("user-agent", defaults.UserAgent, "User-Agent sent to the feed server")
	flags.Duration("timeout", defaults.Timeout, "timeout of the feed request")
}
