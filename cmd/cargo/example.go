package main

import (
	"github.com/spf13/cobra"

	"cargo/internal/adapters/in/manifest"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print a sample voyage manifest",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return manifest.Encode(c.OutOrStdout(), sampleManifest())
		},
	}
}

func sampleManifest() manifest.Manifest {
	return manifest.Manifest{
		Ships: []manifest.Ship{
			{Name: "Aurora", MaxSpeed: 22, MaxContainers: 4, MaxWeight: 60},
			{Name: "Borealis", MaxSpeed: 18, MaxContainers: 2, MaxWeight: 30},
		},
		Steps: []manifest.Step{
			{Action: manifest.ActionLoad, Ship: "Aurora", Container: &manifest.Container{
				Ref: "milk", Kind: "liquid", Product: "Milk",
				MaxCapacity: 10000, Weight: 2000, Height: 250, Depth: 600, Load: 8000,
			}},
			{Action: manifest.ActionLoad, Ship: "Aurora", Container: &manifest.Container{
				Ref: "fuel", Kind: "liquid", Product: "Fuel", Hazardous: true,
				MaxCapacity: 10000, Weight: 2500, Height: 250, Depth: 600, Load: 4500,
			}},
			{Action: manifest.ActionLoad, Ship: "Aurora", Container: &manifest.Container{
				Ref: "helium", Kind: "gas", Product: "Helium", Pressure: 12,
				MaxCapacity: 3000, Weight: 1800, Height: 250, Depth: 600, Load: 2500,
			}},
			{Action: manifest.ActionLoad, Ship: "Aurora", Container: &manifest.Container{
				Ref: "bananas", Kind: "reefer", Product: "Bananas",
				MaxCapacity: 6000, Weight: 3000, Height: 250, Depth: 600, Load: 5500,
			}},
			{Action: manifest.ActionTransfer, Ship: "Aurora", To: "Borealis", Ref: "bananas"},
			{Action: manifest.ActionEmpty, Ship: "Aurora", Ref: "helium"},
			{Action: manifest.ActionReplace, Ship: "Aurora", Ref: "milk", Container: &manifest.Container{
				Ref: "fish", Kind: "reefer", Product: "Fish",
				MaxCapacity: 6000, Weight: 3000, Height: 250, Depth: 600, Load: 4000,
			}},
			{Action: manifest.ActionUnload, Ship: "Aurora", Ref: "fuel"},
		},
	}
}
