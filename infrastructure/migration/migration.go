package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
)

// Step é uma alteração de schema idempotente
type Step struct {
	Name      string
	Statement string
}

// Steps cria as tabelas usadas pela coleta. Todas podem ser reaplicadas.
var Steps = []Step{
	{
		Name: "roi_snapshots",
		Statement: `CREATE TABLE IF NOT EXISTS roi_snapshots (
			id             VARCHAR(32) PRIMARY KEY,
			product_id     VARCHAR(64) NOT NULL,
			snapshot_date  DATE NOT NULL,
			collected_at   TIMESTAMPTZ NOT NULL,
			total_sales    NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_spend    NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_budget   NUMERIC(14,2) NOT NULL DEFAULT 0,
			total_roi      NUMERIC(10,4) NOT NULL DEFAULT 0,
			roi_unbounded  BOOLEAN NOT NULL DEFAULT FALSE,
			total_orders   INTEGER NOT NULL DEFAULT 0,
			total_numbers  INTEGER NOT NULL DEFAULT 0,
			profit         NUMERIC(14,2) NOT NULL DEFAULT 0,
			margin_percent NUMERIC(10,2) NOT NULL DEFAULT 0,
			channels       JSONB NOT NULL DEFAULT '{}'
		)`,
	},
	{
		Name:      "roi_snapshots_product_collected_idx",
		Statement: `CREATE INDEX IF NOT EXISTS roi_snapshots_product_collected_idx ON roi_snapshots (product_id, snapshot_date, collected_at DESC)`,
	},
	{
		Name: "collection_logs",
		Statement: `CREATE TABLE IF NOT EXISTS collection_logs (
			id             VARCHAR(32) PRIMARY KEY,
			snapshot_id    VARCHAR(32) REFERENCES roi_snapshots (id),
			log_date       DATE NOT NULL,
			collected_at   TIMESTAMPTZ NOT NULL,
			status         VARCHAR(16) NOT NULL,
			message        TEXT NOT NULL DEFAULT '',
			mapping_source VARCHAR(16) NOT NULL DEFAULT ''
		)`,
	},
	{
		Name:      "collection_logs_date_idx",
		Statement: `CREATE INDEX IF NOT EXISTS collection_logs_date_idx ON collection_logs (log_date, collected_at DESC)`,
	},
	{
		Name: "channel_mappings",
		Statement: `CREATE TABLE IF NOT EXISTS channel_mappings (
			account_id VARCHAR(64) PRIMARY KEY,
			channel    VARCHAR(32) NOT NULL,
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "campaign_settings",
		Statement: `CREATE TABLE IF NOT EXISTS campaign_settings (
			product_id   VARCHAR(64) PRIMARY KEY,
			name         VARCHAR(255) NOT NULL,
			roi_goal     NUMERIC(10,4) NOT NULL,
			daily_budget NUMERIC(14,2) NOT NULL,
			target_sales NUMERIC(14,2) NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL
		)`,
	},
}

// Apply executa todos os passos em uma única transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	logrus.WithField("steps", len(Steps)).Info("Iniciando migração do schema")
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, step := range Steps {
			if _, err := tx.ExecContext(ctx, step.Statement); err != nil {
				return fmt.Errorf("erro no passo %s: %w", step.Name, err)
			}

			logrus.WithFields(logrus.Fields{
				"step":     step.Name,
				"progress": fmt.Sprintf("%d/%d", i+1, len(Steps)),
			}).Debug("Passo da migração aplicado")
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída")
	return nil
}
