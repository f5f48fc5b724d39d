package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"registry-server/core/config"
	"registry-server/core/logger"
	"registry-server/feature/registry"
	"registry-server/feature/registry/manifest"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the registry files",
	Long: `Loads every configured registry index and each component manifest it lists,
and checks that they parse and carry a name, a type and a files array.
Outputs a summary by default or the full report with --json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		src, _, err := openSource(ctx, cfg, logg)
		if err != nil {
			return err
		}
		layout, err := registry.CombineLayouts(cfg.Registry.Layouts)
		if err != nil {
			return err
		}

		report, checkErr := manifest.NewChecker(src, layout).Check(ctx)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
		} else {
			for _, idx := range report.Indexes {
				if idx.Error != "" {
					logg.Error("Registry index unusable", zap.String("file", idx.File), zap.String("error", idx.Error))
					continue
				}
				logg.Info("Registry index is valid JSON",
					zap.String("file", idx.File),
					zap.String("schema", idx.Schema),
					zap.Strings("keys", idx.Keys),
					zap.Int("components", len(idx.Components)))
				for _, c := range idx.Components {
					if c.Error != "" {
						logg.Error("Component invalid", zap.String("name", c.Name), zap.String("error", c.Error))
						continue
					}
					logg.Info("Component valid",
						zap.String("name", c.Name),
						zap.String("type", c.Type),
						zap.Int("files", c.Files))
				}
			}
		}

		if checkErr != nil {
			return fmt.Errorf("registry check found %d problem(s): %w", len(multierr.Errors(checkErr)), checkErr)
		}
		logg.Info("Registry files are valid and ready for distribution")
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print the full report as JSON")
	RootCmd.AddCommand(checkCmd)
}
