package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCmd prints the inventory summary.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show stock levels and catalog value",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")
		lowStock, _ := cmd.Flags().GetBool("low-stock")

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		svc := rt.service()

		report, err := svc.InventoryReport(ctx)
		if err != nil {
			return err
		}

		fmt.Println("\n=== Inventory Report ===")
		fmt.Printf("Products: %d\n", report.TotalProducts)
		fmt.Printf("Units in Stock: %d\n", report.TotalStock)
		fmt.Printf("Low Stock: %d\n", report.LowStock)
		fmt.Printf("Out of Stock: %d\n", report.OutOfStock)
		fmt.Printf("Total Value: %s\n", report.TotalValue.StringFixed(2))
		for _, cat := range report.Categories {
			fmt.Printf("  %-20s %5d products %7d units %12s\n", cat.Category, cat.Products, cat.Stock, cat.Value.StringFixed(2))
		}

		if lowStock {
			low, err := svc.LowStock(ctx)
			if err != nil {
				return err
			}
			fmt.Println("\n=== Low Stock ===")
			for _, p := range low {
				fmt.Printf("  #%-6d %-30s %4d / %d\n", p.ID, p.Name, p.Stock, p.MinStock)
			}
		}

		if jsonOutput {
			filename := fmt.Sprintf("inventory_report_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			rt.logger.Info("Detailed JSON report saved", zap.String("file", filename))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("json", false, "Also save the report as JSON")
	reportCmd.Flags().Bool("low-stock", false, "List products at or below their reorder threshold")
	RootCmd.AddCommand(reportCmd)
}
