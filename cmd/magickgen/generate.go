package main

import (
	"fmt"

	"magickgen/internal"

	"github.com/spf13/cobra"
)

func init() {
	var prune bool

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the bindings of the catalog classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			generator, err := loadGenerator(c)
			if err != nil {
				return err
			}

			output := c.Resolve(c.Generator.Output)
			written, err := generator.Write(output)
			if err != nil {
				return err
			}

			if prune {
				units, err := generator.Generate()
				if err != nil {
					return err
				}
				keep := make([]string, 0, len(units))
				for _, unit := range units {
					keep = append(keep, unit.Name)
				}

				removed, err := internal.RemoveStaleFiles(output, keep)
				if err != nil {
					return err
				}
				for _, path := range removed {
					log.Infof("removed %s", path)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d files written to %s\n", len(written), output)
			return nil
		},
	}

	addGeneratorFlags(generateCmd)
	generateCmd.Flags().BoolVar(&prune, "prune", false, "Remove generated files of classes no longer generated")
	rootCmd.AddCommand(generateCmd)
}
