package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cclosures/cclosures-go/internal/manifest"
	"github.com/cclosures/cclosures-go/pkg/closure"
	"github.com/cclosures/cclosures-go/pkg/closure/logging"
)

// logEnv overrides the default log level when --log-level is not given.
const logEnv = "CCLOSURES_LOG"

func newRootCmd() *cobra.Command {
	var level string

	rootCmd := &cobra.Command{
		Use:   "cclosuregen",
		Short: "Generate C closure types backed by Go functions",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !cmd.Flags().Changed("log-level") {
				if env := os.Getenv(logEnv); env != "" {
					level = env
				}
			}
			l, err := parseLevel(level)
			if err != nil {
				return err
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: l})
			closure.SetLogger(logging.New(slog.New(handler)))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&level, "log-level", "warn", "log level (debug, info, warn, error); env "+logEnv)

	rootCmd.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newListCmd(),
		newImportCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// loadManifest loads the --manifest path, or the nearest closures.yaml above
// the working directory when none is given.
func loadManifest(path string) (*manifest.Manifest, string, error) {
	if path == "" {
		found, err := manifest.Find(".")
		if err != nil {
			return nil, "", err
		}
		if found == "" {
			return nil, "", fmt.Errorf("no closures.yaml found; pass --manifest")
		}
		path = found
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "cclosuregen %s\n", closure.BridgeVersion())
			return nil
		},
	}
}
