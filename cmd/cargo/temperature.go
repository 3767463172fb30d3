package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/pkg/errs"
)

func newTemperatureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "temperature [product]",
		Short: "Show required reefer temperatures",
		Long: `Without arguments, list every known product and its required temperature.
With a product name, print the temperature a reefer carrying it is kept at.
Unknown products use the default temperature.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			catalog := cargo.NewTemperatureCatalog(a.logger)
			out := c.OutOrStdout()

			if len(args) == 1 {
				printf(out, "%s: %s°C\n", args[0], errs.FormatQuantity(catalog.RequiredTemperature(args[0])))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, p := range catalog.Products() {
				if _, err := fmt.Fprintf(tw, "%s\t%s°C\n", p.Product, errs.FormatQuantity(p.Temperature)); err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}
