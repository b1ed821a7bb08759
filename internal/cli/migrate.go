package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/roi-collector-api/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas da coleta",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migration.Apply(cmd.Context(), getApp().DB)
	},
}
