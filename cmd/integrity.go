package cmd

import (
	"fmt"
	"os"
	"time"

	"inventory-manager/feature/inventory"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd checks the stored catalog.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the catalog for ambiguous keys and invalid records",
	Long:  `Reports barcodes or SKUs shared by several products, repeated ids, invalid records and, for the database backend, missing columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}

		report, err := rt.service().CheckIntegrity(ctx)
		if err != nil {
			return fmt.Errorf("integrity check failed: %w", err)
		}

		counts := make(map[string]int)
		for _, issue := range report.Issues {
			counts[issue.Kind]++
		}

		if jsonOutput {
			filename := fmt.Sprintf("integrity_inventory_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			rt.logger.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("issues", len(report.Issues)))
		}

		executionTime := time.Since(startTime)

		fmt.Println("\n=== Catalog Integrity Metrics ===")
		fmt.Printf("Total Products: %d\n", report.Products)
		fmt.Printf("Missing Columns: %d\n", len(report.MissingColumns))
		fmt.Printf("Duplicate Keys: %d\n", counts[inventory.IssueDuplicateKey])
		fmt.Printf("Duplicate IDs: %d\n", counts[inventory.IssueDuplicateID])
		fmt.Printf("Invalid Records: %d\n", counts[inventory.IssueInvalid])
		fmt.Printf("Execution Time: %s\n", executionTime.String())

		rt.logger.Info("Catalog integrity check completed",
			zap.Bool("healthy", report.Healthy()),
			zap.Int("products", report.Products),
			zap.Int("issues", len(report.Issues)),
			zap.Duration("execution_time", executionTime),
		)
		return nil
	},
}

func init() {
	integrityCmd.Flags().Bool("json", false, "Save the detailed report as JSON")
	RootCmd.AddCommand(integrityCmd)
}
