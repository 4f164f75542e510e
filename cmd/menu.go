package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"menu-manager/core/utils"

	"github.com/spf13/cobra"
)

// menuCmd prints a menu with its relations and current availability.
var menuCmd = &cobra.Command{
	Use:   "menu <id>",
	Short: "Show a menu, its nested collections and availability",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}

		rt, err := bootstrap(true)
		if err != nil {
			return err
		}
		svc, err := rt.menuService()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		menu, err := svc.Get(ctx, id)
		if err != nil {
			return err
		}
		avail, err := svc.Availability(ctx, id, time.Now())
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(menu, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))

		fmt.Println("\n=== Availability ===")
		fmt.Printf("Options: %d\n", len(menu.Options))
		fmt.Printf("Categories: %d\n", len(menu.Categories))
		fmt.Printf("Special Active: %t\n", avail.IsSpecial)
		fmt.Printf("Mealtime Active: %t\n", avail.IsMealtime)
		fmt.Printf("Checked At: %s\n", avail.CheckedAt)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(menuCmd)
}
