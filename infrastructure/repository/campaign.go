package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

const campaignSettingsTable = "campaign_settings"

type CampaignRepository interface {
	Get(ctx context.Context, productID string) (*domain.CampaignSettings, error)
	Upsert(ctx context.Context, settings *domain.CampaignSettings) error
}

type campaignRepository struct {
	conn postgres.Conn
}

func NewCampaignRepository(conn postgres.Conn) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Get(ctx context.Context, productID string) (*domain.CampaignSettings, error) {
	query, args, err := squirrel.
		Select("product_id, name, roi_goal, daily_budget, target_sales, updated_at").
		From(campaignSettingsTable).
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	settings := &domain.CampaignSettings{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&settings.ProductID,
		&settings.Name,
		&settings.ROIGoal,
		&settings.DailyBudget,
		&settings.TargetSales,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração da campanha: %w", err)
	}

	return settings, nil
}

func (r *campaignRepository) Upsert(ctx context.Context, settings *domain.CampaignSettings) error {
	query, args, err := squirrel.
		Insert(campaignSettingsTable).
		Columns("product_id", "name", "roi_goal", "daily_budget", "target_sales", "updated_at").
		Values(
			settings.ProductID,
			settings.Name,
			settings.ROIGoal,
			settings.DailyBudget,
			settings.TargetSales,
			settings.UpdatedAt,
		).
		Suffix(`
			ON CONFLICT (product_id) DO UPDATE SET
				name = EXCLUDED.name,
				roi_goal = EXCLUDED.roi_goal,
				daily_budget = EXCLUDED.daily_budget,
				target_sales = EXCLUDED.target_sales,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}
