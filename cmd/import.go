package cmd

import (
	"fmt"

	"product-console/internal/importer"
	"product-console/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	csvFile         string
	continueOnError bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Add products from a CSV file",
	Long: `Read products from a CSV file with an ID,Name,Category,Price,Stock header
(any case) and submit them one at a time. Rows without a valid ID are skipped.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&csvFile, "csv", "c", "", "CSV file to import (required)")
	importCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Keep going after a failed submission")

	importCmd.MarkFlagRequired("csv")
}

func runImport(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger()

	rows, err := importer.ParseFile(csvFile)
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	log.Info("Parsed product rows", zap.Int("rows", len(rows)), zap.String("file", csvFile))

	imp := importer.New(newAPIClient(log), log)
	imp.ContinueOnError = continueOnError

	result, err := imp.Import(cmd.Context(), rows)
	fmt.Fprintf(cmd.OutOrStdout(), "Import complete: %d rows, %d submitted, %d skipped, %d failed\n",
		result.Total, result.Submitted, result.Skipped, result.Failed)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return nil
}
