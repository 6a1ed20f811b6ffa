package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/serviqo/internal/content"
	"github.com/ziadkadry99/serviqo/internal/progress"
	"github.com/ziadkadry99/serviqo/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `Renders the site into a self-contained static directory. The exported page
resolves each visitor's theme in the browser from local storage and the
operating system's color scheme.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to export.output_dir)")
	buildCmd.Flags().String("assets", "", "override assets directory (defaults to export.assets_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}
	assetsDir, _ := cmd.Flags().GetString("assets")
	if assetsDir == "" {
		assetsDir = cfg.Export.AssetsDir
	}

	siteContent := content.Default()
	if cfg.ContentFile != "" {
		if siteContent, err = content.Load(cfg.ContentFile); err != nil {
			return err
		}
	}

	renderer, err := site.NewRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	exporter := &site.Exporter{
		Renderer:      renderer,
		OutputDir:     outputDir,
		StorageKey:    cfg.Theme.StorageKey,
		AssetsDir:     assetsDir,
		AssetPatterns: cfg.Export.Assets,
		Reporter:      progress.NewReporter("Exporting site"),
	}
	count, err := exporter.Export(siteContent)
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d files)\n", outputDir, count)
	return nil
}
