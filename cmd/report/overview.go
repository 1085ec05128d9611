package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kexpay/internal/ledger"
	"kexpay/internal/logger"
	"kexpay/internal/report"
)

func overviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Print totals, health score, budgets and goals",
		RunE:  runOverview,
	}
	cmd.Flags().String("seed", "", "seed file to load (JSON)")
	return cmd
}

func runOverview(cmd *cobra.Command, _ []string) error {
	logger.Init(viper.GetString("env"))
	defer logger.Sync()
	log := logger.Named("report")

	path := viper.GetString("seed")
	if path == "" {
		return errors.New("no seed file: pass --seed or set KEXPAY_SEED")
	}

	l, err := loadLedger(path)
	if err != nil {
		return err
	}
	log.Debugw("seed loaded", "path", path, "transactions", len(l.Transactions()))

	return report.Render(cmd.OutOrStdout(), report.FromLedger(l))
}

func loadLedger(path string) (*ledger.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	l := ledger.New()
	if err := l.LoadSeed(f); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return l, nil
}
