package main

import (
	"fmt"
	"os"

	"magickgen/internal"
	"magickgen/internal/config"
	"magickgen/internal/generation"
	"magickgen/internal/metadata"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var (
	configDir string
	verbosity int

	catalogPath string
	outputPath  string
	packageName string
	quantum     string
	platform    string
	inputPath   string
)

var log = commonlog.GetLogger("magickgen")

var rootCmd = &cobra.Command{
	Use:           "magickgen",
	Short:         "Generates Go bindings for the Magick.Native library",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(verbosity, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "C", ".", "Directory to search upwards for "+config.FileName)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
}

// addGeneratorFlags registers the flags overriding the [generator] section.
func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Directory of class descriptors")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Directory receiving the generated files")
	cmd.Flags().StringVar(&packageName, "package", "", "Package name of the generated files")
	cmd.Flags().StringVarP(&quantum, "quantum", "q", "", "Quantum of the native build (Q8, Q16, Q16-HDRI)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Target platform (AnyCPU, x64, x86, arm64)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "File listing the classes to generate, one per line")
}

// loadConfig reads magickgen.toml, when there is one, and applies the flags
// given on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.FindAndLoad(configDir)
	if err != nil {
		return nil, err
	}
	if c == nil {
		log.Debugf("no %s found, using defaults", config.FileName)
		c = config.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		c.Generator.Catalog = catalogPath
	}
	if flags.Changed("output") {
		c.SetOutput(outputPath)
	}
	if flags.Changed("package") {
		c.SetPackage(packageName)
	}
	if flags.Changed("quantum") {
		c.Generator.Quantum = config.Quantum(quantum)
	}
	if flags.Changed("platform") {
		c.Generator.Platform = config.Platform(platform)
	}
	if flags.Changed("input") {
		file, err := os.Open(inputPath)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		c.Generator.Classes, err = internal.ReadClassList(file)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", inputPath, err)
		}
	}

	if err := c.Normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadGenerator reads the catalog and registers the configured classes.
func loadGenerator(c *config.Config) (*generation.Generator, error) {
	reader, err := metadata.NewReader(c.Resolve(c.Generator.Catalog))
	if err != nil {
		return nil, err
	}

	catalog := reader.Catalog()
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("catalog %s has no classes", c.Resolve(c.Generator.Catalog))
	}
	log.Infof("read %d classes from %s", catalog.Len(), c.Resolve(c.Generator.Catalog))

	generator := generation.NewGenerator(catalog, generation.NewOptions(c))
	if len(c.Generator.Classes) == 0 {
		generator.RegisterAll()
		return generator, nil
	}

	for _, name := range c.Generator.Classes {
		class, found := reader.TryGetClass(name)
		if !found {
			return nil, fmt.Errorf("class %s is not in the catalog", name)
		}
		generator.RegisterClass(class)
	}
	return generator, nil
}
