package main

import (
	"strconv"

	"magickgen/internal/metadata"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			reader, err := metadata.NewReader(c.Resolve(c.Generator.Catalog))
			if err != nil {
				return err
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Class", "Kind", "Interface", "Quantum", "Properties", "Methods", "Throwing"}),
			)
			for _, class := range reader.Catalog().Classes() {
				table.Append(
					class.Name,
					classKind(class),
					yesNo(class.HasInterface),
					yesNo(class.IsQuantumType),
					strconv.Itoa(len(class.Properties)),
					strconv.Itoa(len(class.Methods)),
					strconv.Itoa(throwingMembers(class)),
				)
			}

			return table.Render()
		},
	}

	addGeneratorFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

func classKind(class metadata.MagickClass) string {
	switch {
	case class.IsStatic:
		return "static"
	case class.IsDynamic:
		return "dynamic"
	default:
		return "instance"
	}
}

func throwingMembers(class metadata.MagickClass) int {
	count := 0
	if class.Constructor != nil && class.Constructor.Throws {
		count++
	}
	for _, property := range class.Properties {
		if property.Throws {
			count++
		}
	}
	for _, method := range class.Methods {
		if method.Throws {
			count++
		}
	}
	return count
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
