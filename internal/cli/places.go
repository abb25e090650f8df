package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func placesCmd(a *app) *cobra.Command {
	var mappedOnly bool

	c := &cobra.Command{
		Use:   "places",
		Short: "List every city in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			places := a.dir.Places()
			if mappedOnly {
				places = a.dir.Mapped()
			}

			w := cmd.OutOrStdout()
			for _, p := range places {
				if _, err := fmt.Fprintln(w, p.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	c.Flags().BoolVar(&mappedOnly, "mapped", false, "only cities with known coordinates")
	return c
}
