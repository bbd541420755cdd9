package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when the generated files are out of date",
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
			stale, err := generator.Check(output)
			if err != nil {
				return err
			}
			if len(stale) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", output)
				return nil
			}

			for _, name := range stale {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return fmt.Errorf("%d generated files in %s are out of date", len(stale), output)
		},
	}

	addGeneratorFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}
