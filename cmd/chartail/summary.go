package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/chartail/internal/fetch"
	"github.com/five82/chartail/internal/report"
)

// summaryCmd reads the whole input without a UI and prints one line per
// series.
func (c *cli) summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [flags] [-- command...]",
		Short: "Print per-series statistics of the input and exit.",
		Long: `summary reads the input to the end, merges it the way the chart would, and
prints the number of points, min, max, last value and sum of every series.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := c.settings(cmd, args)
			if err != nil {
				return err
			}
			if s.ReadsStdin() && c.stdinIsTerminal() {
				return errNoInput
			}

			src := s.Source()
			rc, err := src.Open(c.ctx)
			if err != nil {
				return err
			}
			set, err := fetch.ReadAll(rc, s.FetchOptions())
			closeErr := rc.Close()
			if err != nil {
				return fmt.Errorf("summarize %s: %w", src, err)
			}
			if closeErr != nil {
				return closeErr
			}

			return report.Print(cmd.OutOrStdout(), set, c.v.GetString("output"), c.v.GetInt("precision"))
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringP("output", "o", report.TableOut, "output format: table or csv")
	cmd.Flags().Int("precision", 2, "decimal places in the output")
	_ = c.v.BindPFlags(cmd.Flags())
	return cmd
}
