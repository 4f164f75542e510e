package cmd

import (
	"fmt"

	"menu-manager/core/utils"
	"menu-manager/feature/menus/stock"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addStock bool

// stockCmd adjusts the stock of a menu by hand.
var stockCmd = &cobra.Command{
	Use:   "stock <id> <quantity>",
	Short: "Adjust the stock of a menu",
	Long: `Subtracts quantity from the stock of a menu, or adds it back with --add.
Menus that do not track stock are left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		qty, err := utils.ParseQuantity(args[1])
		if err != nil {
			return err
		}
		dir := stock.Subtract
		if addStock {
			dir = stock.Add
		}

		rt, err := bootstrap(true)
		if err != nil {
			return err
		}
		svc, err := rt.menuService()
		if err != nil {
			return err
		}

		menu, applied, err := svc.AdjustStockByID(cmd.Context(), id, qty, dir)
		if err != nil {
			return fmt.Errorf("stock adjustment failed: %w", err)
		}
		if !applied {
			rt.logger.Warn("Stock adjustment declined", zap.Uint("menu_id", id), zap.Bool("subtract_stock", menu.SubtractStock), zap.Int("quantity", qty))
			return nil
		}
		rt.logger.Info("Stock adjusted", zap.Uint("menu_id", id), zap.String("action", string(dir)), zap.Int("quantity", qty), zap.Int("stock_qty", menu.StockQty))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(stockCmd)
	stockCmd.Flags().BoolVar(&addStock, "add", false, "Add the quantity back instead of subtracting it")
}
