// Command report prints the dashboard overview for a seed file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "KeX-Pay terminal reports",
	Long: `report loads a KeX-Pay seed file into a fresh ledger and prints the
figures the dashboard derives from it.

Every flag can also be set through a KEXPAY_ environment variable,
e.g. KEXPAY_SEED=data.json.`,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().String("env", "development", "log environment (development, production, test)")

	rootCmd.AddCommand(overviewCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig binds the running command's flags, inherited ones included,
// so flags win over KEXPAY_ variables.
func initConfig(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix("KEXPAY")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}
