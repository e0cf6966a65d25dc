package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tgchart/pkg/core"
)

func newBoundsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the value range and size of the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := root.loadDataset()
			if err != nil {
				return err
			}
			min, max := core.ComputeBoundaries(ds)
			x, _ := ds.XColumn()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "min\t%v\nmax\t%v\npoints\t%d\n", min, max, ds.Points())
			fmt.Fprintf(out, "from\t%s\nto\t%s\n", core.FormatDate(x.Values[0]), core.FormatDate(x.Values[len(x.Values)-1]))
			for _, c := range ds.LineColumns() {
				fmt.Fprintf(out, "series\t%s\t%s\n", c.ID, ds.Name(c.ID))
			}
			return nil
		},
	}
}
