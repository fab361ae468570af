package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/detector"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/scanner"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/tui"
	"github.com/vismigrate/vismigrate/internal/application"
	"github.com/vismigrate/vismigrate/internal/domain"
)

func newDetectCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Detect the visual testing platform in use",
		Long:  "Analyze a project and report which visual testing platform, test framework, and language it uses, along with the files a migration would touch.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewDetectService(
				scanner.New(),
				detector.New(newLogger(cmd)),
			)

			result, err := svc.Detect(absPath)
			if err != nil {
				return detectionError(err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDetection(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output detection result as JSON")
	addVerboseFlag(cmd)

	return cmd
}

// detectionError rewraps detection failures with actionable guidance.
func detectionError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotDetected):
		return fmt.Errorf("%w\n\nNo Percy, Applitools, or Sauce Labs Visual usage was found. Check that you are pointing at the project root.", err)
	case domain.IsConflict(err):
		return fmt.Errorf("%w\n\nRemove one of the platforms before migrating.", err)
	default:
		return err
	}
}
