package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "scoopshop",
	Short:        "Ice cream shop order workflow",
	Long:         `Take a single ice cream order from flavor selection to pickup through an interactive menu, tracking flavor inventory as orders are placed.`,
	SilenceUsage: true,
	RunE:         runShop,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log order state transitions to stderr")
	rootCmd.PersistentFlags().StringToString("stock", nil, "opening inventory in lbs per flavor (e.g. Vanilla=5,Chocolate=2)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("stock", rootCmd.PersistentFlags().Lookup("stock"))
}
