package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

var historyDays int

type historyReader interface {
	History(ctx context.Context, days int) ([]domain.HistoryEntry, error)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lista as coletas dos últimos dias",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory(cmd.Context(), cmd.OutOrStdout(), getApp().Reporter, historyDays)
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 7, "Quantidade de dias (1 a 90)")
}

func runHistory(ctx context.Context, out io.Writer, service historyReader, days int) error {
	entries, err := service.History(ctx, days)
	if err != nil {
		return err
	}
	return printJSON(out, entries)
}
