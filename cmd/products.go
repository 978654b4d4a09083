package cmd

import (
	"encoding/json"
	"fmt"

	"product-console/internal/console"
	"product-console/pkg/logger"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the product list",
	RunE:  runList,
}

var addForm console.Form

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one product",
	Long:  "Validate the product fields and submit them to the uploads endpoint.",
	RunE:  runAdd,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the raw JSON array")

	addCmd.Flags().StringVar(&addForm.ID, "id", "", "Product ID (required, non-zero number)")
	addCmd.Flags().StringVar(&addForm.Name, "name", "", "Product name")
	addCmd.Flags().StringVar(&addForm.Category, "category", "", "Product category")
	addCmd.Flags().StringVar(&addForm.Price, "price", "", "Price")
	addCmd.Flags().StringVar(&addForm.Stock, "stock", "", "Units in stock")
}

func runList(cmd *cobra.Command, args []string) error {
	client := newAPIClient(logger.GetLogger())

	products, err := client.ListProducts(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s: %w", console.MsgLoadFailed, err)
	}

	out := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	}

	if len(products) == 0 {
		fmt.Fprintln(out, console.EmptyNoProducts)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Category", "Price", "Stock")
	for _, p := range products {
		v := console.NewProductView(p)
		t.Row(v.ID, v.Name, v.Category, v.Price, v.Stock)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	product, err := addForm.Product()
	if err != nil {
		return fmt.Errorf("%s: %w", console.MsgInvalidID, err)
	}

	client := newAPIClient(logger.GetLogger())
	resp, err := client.CreateProduct(cmd.Context(), product)
	if err != nil {
		return fmt.Errorf("%s: %w", console.MsgAddFailed, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), console.MsgAdded)
	fmt.Fprintln(cmd.OutOrStdout(), string(resp))
	return nil
}
