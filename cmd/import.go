package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importMode    string
	importDryRun  bool
	importYes     bool
	importObject  bool
	importVerbose bool
)

// importCmd imports a spreadsheet into the catalog.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a csv, tsv or xlsx sheet into the catalog",
	Long: `Parse an inventory sheet from any POS export and reconcile it with the catalog.

Merge (default) updates products matched by barcode or SKU and appends the rest.
Replace discards the catalog and renumbers every imported product; it asks for confirmation.

Examples:
  # Merge a local file
  import stock.csv

  # Preview a replace without writing anything
  import stock.xlsx --mode replace --dry-run

  # Replace non-interactively
  import stock.xlsx --mode replace --yes

  # Import a sheet already uploaded to the bucket
  import imports/stock.csv --object`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importMode, "mode", string(reconcile.ModeMerge), "Import mode: merge or replace")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Compute the outcome without writing it")
	importCmd.Flags().BoolVar(&importYes, "yes", false, "Auto-confirm a replace (non-interactive)")
	importCmd.Flags().BoolVar(&importObject, "object", false, "Read the file from the storage bucket")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Log every planned action")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	mode, err := reconcile.ParseMode(importMode)
	if err != nil {
		return err
	}

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	l := rt.logger
	svc := rt.service()

	run := func(opts inventory.ImportOptions) (*models.ImportReport, error) {
		opts.Mode = string(mode)
		if importObject {
			return svc.ImportObject(ctx, name, opts)
		}
		return importLocal(ctx, svc, name, opts)
	}

	// Merge never needs a confirmation step
	if mode == reconcile.ModeMerge || importDryRun {
		report, err := run(inventory.ImportOptions{DryRun: importDryRun})
		if err != nil {
			return err
		}
		printImportReport(l, report)
		return nil
	}

	l.Info("Planning replace...")
	preview, err := run(inventory.ImportOptions{DryRun: true})
	if err != nil {
		return err
	}
	printImportReport(l, preview)

	msg := fmt.Sprintf("Replace %d products with %d imported ones?", preview.Summary.Existing, preview.Summary.Total)
	if !confirm(msg, importYes) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	report, err := run(inventory.ImportOptions{Confirmed: true})
	if err != nil {
		return err
	}
	printImportReport(l, report)
	return nil
}

func importLocal(ctx context.Context, svc *inventory.Service, path string, opts inventory.ImportOptions) (*models.ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return svc.ImportFile(ctx, filepath.Base(path), f, opts)
}

// printImportReport logs the outcome of an import run.
func printImportReport(l *zap.Logger, r *models.ImportReport) {
	s := r.Summary
	l.Info("Import report",
		zap.String("source", r.Source),
		zap.String("mode", string(r.Mode)),
		zap.Bool("dry_run", r.DryRun),
		zap.Bool("applied", r.Applied),
		zap.Int("rows", r.Rows),
		zap.Int("candidates", r.Candidates),
		zap.Int("existing", s.Existing),
		zap.Int("updated", s.Updated),
		zap.Int("added", s.Added),
		zap.Int("total", s.Total),
		zap.String("duration", r.Duration),
	)

	for _, dup := range r.DuplicateKeys {
		l.Warn("Duplicate key", zap.String("field", dup.Field), zap.String("value", dup.Value), zap.Ints("ids", dup.IDs))
	}

	if importVerbose {
		for _, a := range r.Actions {
			l.Info("Planned action",
				zap.String("type", string(a.Type)),
				zap.Int("id", a.ID),
				zap.String("key", a.Key),
				zap.String("reason", a.Reason),
			)
		}
	}
}
