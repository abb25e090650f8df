package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randytsao24/citydistance/internal/pipeline"
)

func distanceCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "distance START DEST",
		Short: "Print the great-circle distance between two cities",
		Example: `  citydistance distance "Houston, TX" "San Mateo, CA"
  citydistance distance "Houston, TX" Atlantis --style staged --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			out, err := svc.Distance(args[0], args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	c.Flags().StringVar(&a.cfg.PipelineStyle, "style", a.cfg.PipelineStyle,
		fmt.Sprintf("evaluation style: %s|%s", pipeline.StyleComposed, pipeline.StyleStaged))
	return c
}

func nearestCmd(a *app) *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "nearest CITY",
		Short: "List the mapped cities closest to CITY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			defer svc.Close()

			out, err := svc.Nearest(args[0], limit)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of cities (0 for all)")
	return c
}
