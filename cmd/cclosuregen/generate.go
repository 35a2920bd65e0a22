package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cclosures/cclosures-go/internal/codegen"
	"github.com/cclosures/cclosures-go/pkg/closure"
)

func newGenerateCmd() *cobra.Command {
	var manifestPath, outDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the C header, C source and Go glue for a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, dir, err := render(manifestPath, outDir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			for _, f := range files {
				path := filepath.Join(dir, f.Name)
				if err := os.WriteFile(path, f.Content, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				closure.Logger().Info(context.Background(), "wrote file", "path", path, "bytes", len(f.Content))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "manifest file (default: nearest closures.yaml)")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default: the manifest's directory)")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var manifestPath, outDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a manifest and report generated files that are out of date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, dir, err := render(manifestPath, outDir)
			if err != nil {
				return err
			}
			var stale []string
			for _, f := range files {
				path := filepath.Join(dir, f.Name)
				current, err := os.ReadFile(path)
				if err != nil || !bytes.Equal(current, f.Content) {
					closure.Logger().Debug(context.Background(), "stale file", "path", path, "error", err)
					stale = append(stale, path)
				}
			}
			if len(stale) > 0 {
				return fmt.Errorf("generated files out of date, rerun cclosuregen generate:\n  %s", strings.Join(stale, "\n  "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d files up to date\n", len(files))
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "manifest file (default: nearest closures.yaml)")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory holding the generated files (default: the manifest's directory)")
	return cmd
}

func render(manifestPath, outDir string) ([]codegen.File, string, error) {
	m, path, err := loadManifest(manifestPath)
	if err != nil {
		return nil, "", err
	}
	g, err := codegen.New(m, path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	files, err := g.Generate()
	if err != nil {
		return nil, "", err
	}
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	return files, outDir, nil
}
