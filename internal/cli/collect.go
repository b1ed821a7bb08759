package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/vfg2006/roi-collector-api/internal/usecases/collecting"
)

type collector interface {
	Collect(ctx context.Context) (*collecting.Result, error)
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Executa uma coleta e imprime o resultado",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(cmd.Context(), cmd.OutOrStdout(), getApp().Collector)
	},
}

func runCollect(ctx context.Context, out io.Writer, service collector) error {
	result, err := service.Collect(ctx)
	if err != nil {
		return err
	}
	return printJSON(out, result)
}
