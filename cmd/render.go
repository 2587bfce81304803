package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/semview/internal/progress"
	"github.com/ziadkadry99/semview/internal/site"
	"github.com/ziadkadry99/semview/internal/view"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the viewer as a static site",
	Long: `Loads the mapping document and writes a self-contained static site:
an index page plus one page per variable, browsable from any file
server.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("output", "", "override output directory")
	renderCmd.Flags().String("source", "", "override the configured document source")
	renderCmd.Flags().String("title", "", "override the configured page title")
	renderCmd.Flags().Bool("serve", false, "serve the rendered site afterwards")
	renderCmd.Flags().Int("port", 8080, "port for the local file server")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	controller := view.NewController(cfg.Source, cfg.Title)
	if err := controller.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading mapping document: %w", err)
	}

	gen := site.NewGenerator(outputDir, cfg.Title)
	gen.Reporter = progress.NewReporter()

	pages, err := gen.Generate(controller.State())
	if err != nil {
		return fmt.Errorf("rendering site: %w", err)
	}

	fmt.Printf("Static site rendered: %s (%d pages)\n", outputDir, pages)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		if err := site.Serve(outputDir, port); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}
	return nil
}
