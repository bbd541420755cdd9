package main

import (
	"fmt"

	"magickgen/internal/metadata"

	"github.com/spf13/cobra"
)

func init() {
	var (
		packageID  string
		constraint string
		output     string
	)

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the native libraries from NuGet",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("package-id") {
				c.Fetch.Package = packageID
			}
			if flags.Changed("version") {
				c.Fetch.Version = constraint
			}
			if flags.Changed("runtimes") {
				c.Fetch.Output = output
			}

			downloader := metadata.NewDownloader(c.Fetch.Source)
			id := c.FetchPackage()
			resolved, err := downloader.ResolveVersion(cmd.Context(), id, c.Fetch.Version)
			if err != nil {
				return err
			}
			log.Infof("fetching %s %s", id, resolved)

			files, err := downloader.Download(cmd.Context(), id, resolved, c.Generator.Platform.RuntimeIdentifiers(), c.Resolve(c.Fetch.Output))
			if err != nil {
				return err
			}

			for _, file := range files {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}
			return nil
		},
	}

	addGeneratorFlags(fetchCmd)
	fetchCmd.Flags().StringVar(&packageID, "package-id", "", "NuGet package id, derived from quantum and platform by default")
	fetchCmd.Flags().StringVar(&constraint, "version", "", "Version constraint, e.g. \">= 14.0, < 15\"")
	fetchCmd.Flags().StringVar(&output, "runtimes", "", "Directory receiving the native libraries")
	rootCmd.AddCommand(fetchCmd)
}
