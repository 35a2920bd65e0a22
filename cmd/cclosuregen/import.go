package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cclosures/cclosures-go/internal/manifest"
	"github.com/cclosures/cclosures-go/internal/sig"
	"github.com/cclosures/cclosures-go/pkg/closure"
)

func newImportCmd() *cobra.Command {
	var pkg, out string

	cmd := &cobra.Command{
		Use:   "import HEADER",
		Short: "Convert CLOSURE_DEF macro invocations in a C header into a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sigs, err := sig.ParseMacros(string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if len(sigs) == 0 {
				return fmt.Errorf("%s: no CLOSURE_DEF invocations found", args[0])
			}

			m := manifest.FromSignatures(pkg, sigs)
			data, err := manifest.Marshal(m)
			if err != nil {
				return err
			}
			// Reject anything generate would reject.
			if _, err := manifest.Parse(data, args[0]); err != nil {
				return err
			}
			closure.Logger().Info(context.Background(), "imported signatures", "header", args[0], "count", len(sigs))

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&pkg, "package", "p", "cgo", "Go package of the generated glue")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the manifest here instead of stdout")
	return cmd
}
