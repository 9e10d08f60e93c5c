package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/buildtall-systems/scoopshop/internal/config"
	"github.com/buildtall-systems/scoopshop/internal/menu"
	"github.com/buildtall-systems/scoopshop/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the order menu",
	Long:  `Start the interactive order menu. Reads numbered choices from stdin until Exit is chosen or input ends.`,
	RunE:  runShop,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runShop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(cmd.ErrOrStderr(), "scoopshop: ", log.LstdFlags)
	}
	logger.Printf("opening stock: %v", cfg.Shop.Stock)

	out := cmd.OutOrStdout()
	shop := store.New(
		store.WithStock(cfg.Shop.Stock),
		store.WithOutput(out),
		store.WithLogger(logger),
	)

	if err := menu.New(shop, cmd.InOrStdin(), out).Run(cmd.Context()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}

	logger.Printf("final state %s, stock %v", shop.State(), shop.Inventory())
	return nil
}
