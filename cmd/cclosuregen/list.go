package main

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var manifestPath, prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the signatures of a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadManifest(manifestPath)
			if err != nil {
				return err
			}
			sigs, err := m.Resolve()
			if err != nil {
				return err
			}

			var data [][]string
			for _, s := range sigs {
				if prefix != "" && !strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(prefix)) {
					continue
				}
				release := s.ReleaseReturnFunc(m.ReleaseSuffix)
				if release == "" {
					release = "-"
				}
				data = append(data, []string{
					s.ClosureType(),
					s.Returns,
					strconv.Itoa(s.Arity()),
					strings.Join(s.Declare()[1:], ", "),
					release,
				})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"TYPE", "RETURNS", "ARITY", "PARAMS", "RELEASE"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.SetAutoWrapText(false)
			table.AppendBulk(data)
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "manifest file (default: nearest closures.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "only list signatures whose name starts with this prefix")
	return cmd
}
