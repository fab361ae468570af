package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/backup"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/detector"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/gitinfo"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/reporter"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/scanner"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/tui"
	"github.com/vismigrate/vismigrate/internal/application"
	"github.com/vismigrate/vismigrate/internal/domain"
)

func newMigrateCmd() *cobra.Command {
	var (
		dryRun     bool
		withBackup bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "migrate [path]",
		Short: "Migrate the project to Sauce Labs Visual",
		Long:  "Detect the visual testing platform in use and rewrite configuration, build manifests, and test sources to Sauce Labs Visual. Use --dry-run to preview the changes without writing anything.",
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

			log := newLogger(cmd)
			svc := application.NewMigrationService(
				scanner.New(),
				detector.New(log),
				backup.New(),
				gitinfo.New(),
				reporter.New(),
				log,
			)

			var report *domain.MigrationReport
			if dryRun {
				report, err = svc.Plan(absPath)
			} else {
				report, err = svc.Apply(absPath, application.ApplyOptions{Backup: withBackup})
			}
			if err != nil {
				return migrationError(err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without writing any file")
	cmd.Flags().BoolVar(&withBackup, "backup", false, "Copy each file to <file>.bak before overwriting it")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output migration report as JSON")
	addVerboseFlag(cmd)

	return cmd
}

func migrationError(err error) error {
	if errors.Is(err, domain.ErrAlreadyMigrated) {
		return fmt.Errorf("%w\n\nNothing to migrate.", err)
	}
	return detectionError(err)
}

// addVerboseFlag registers the shared --verbose flag.
func addVerboseFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the command's structured logger on stderr so stdout stays
// clean for rendered or JSON output.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "vismigrate",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
}
