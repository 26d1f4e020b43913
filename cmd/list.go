package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogersnm/tick/internal/config"
	"github.com/rogersnm/tick/internal/model"
	"github.com/rogersnm/tick/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("filter") {
			f, _ := cmd.Flags().GetString("filter")
			if !st.SetFilter(model.Filter(f)) {
				return fmt.Errorf("invalid filter %q: must be one of all, active, completed", f)
			}
		}

		fmt.Println(ui.RenderItemTable(st.Filtered(), theme))
		fmt.Println(ui.RenderCounts(st.ActiveCount(), st.CompletedCount(), theme))
		return nil
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter [all|active|completed]",
	Short: "Show or set the default list filter",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(st.Filter())
			return nil
		}

		f := model.Filter(args[0])
		if !st.SetFilter(f) {
			return fmt.Errorf("invalid filter %q: must be one of all, active, completed", args[0])
		}
		cfg.DefaultFilter = string(f)
		if err := config.Save(dataDir, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Default filter set to %s\n", f)
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme <auto|dark|light>",
	Short: "Set the color theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ui.ValidateTheme(args[0]); err != nil {
			return err
		}
		cfg.Theme = args[0]
		if err := config.Save(dataDir, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Theme set to %s\n", args[0])
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("filter", "f", "", "view filter (all, active, completed)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(themeCmd)
}
