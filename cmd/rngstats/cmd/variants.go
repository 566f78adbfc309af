package cmd

import (
	"fmt"
	"io"

	"github.com/grafana/rngstats/rng"
	"github.com/spf13/cobra"
)

func newVariantsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the generator variants that can be compared",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			reference := make(map[rng.Variant]bool)
			for _, v := range rng.Reference() {
				reference[v] = true
			}
			for _, v := range rng.Variants() {
				mark := ""
				if reference[v] {
					mark = " (default)"
				}
				fmt.Fprintf(stdout, "%-8s %s%s\n", v.Key(), v, mark)
			}
		},
	}
}
