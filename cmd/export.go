package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd writes the catalog to a file.
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the catalog as csv or xlsx",
	Long:  `Writes the catalog to a file. A .xlsx extension produces a workbook, anything else comma separated text. The output can be imported again.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path := args[0]

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		svc := rt.service()

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		var n int
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			n, err = svc.ExportSheet(ctx, f)
		} else {
			n, err = svc.ExportCSV(ctx, f)
		}
		if err != nil {
			return err
		}

		rt.logger.Info("Catalog exported", zap.String("file", path), zap.Int("products", n))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
