package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

const channelMappingsTable = "channel_mappings"

type ChannelMappingRepository interface {
	ListActive(ctx context.Context) (domain.ChannelMapping, error)
	ReplaceAll(ctx context.Context, mapping domain.ChannelMapping) error
}

type channelMappingRepository struct {
	conn postgres.Conn
}

func NewChannelMappingRepository(conn postgres.Conn) ChannelMappingRepository {
	return &channelMappingRepository{
		conn: conn,
	}
}

// ListActive lê o mapeamento vigente. Sem linhas, devolve um mapeamento vazio.
func (r *channelMappingRepository) ListActive(ctx context.Context) (domain.ChannelMapping, error) {
	query, args, err := squirrel.
		Select("channel", "account_id").
		From(channelMappingsTable).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("channel ASC", "account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	mapping := domain.ChannelMapping{}
	for rows.Next() {
		var channel, accountID string
		if err := rows.Scan(&channel, &accountID); err != nil {
			return nil, fmt.Errorf("erro ao escanear mapeamento: %w", err)
		}
		mapping[channel] = append(mapping[channel], accountID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return mapping, nil
}

// ReplaceAll desativa as contas fora do novo mapeamento e grava as demais, em uma transação
func (r *channelMappingRepository) ReplaceAll(ctx context.Context, mapping domain.ChannelMapping) error {
	accounts := mapping.Accounts()

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deactivate, args, err := squirrel.
			Update(channelMappingsTable).
			Set("is_active", false).
			Where(squirrel.Expr("NOT (account_id = ANY(?))", pq.Array(accounts))).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deactivate, args...); err != nil {
			return wrapExecError(err)
		}

		if len(accounts) == 0 {
			return nil
		}

		insert := squirrel.
			Insert(channelMappingsTable).
			Columns("account_id", "channel", "is_active")

		for _, accountID := range accounts {
			channel, _ := mapping.ChannelOf(accountID)
			insert = insert.Values(accountID, channel, true)
		}

		upsert, args, err := insert.
			Suffix(`
				ON CONFLICT (account_id) DO UPDATE SET
					channel = EXCLUDED.channel,
					is_active = true
			`).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, upsert, args...); err != nil {
			return wrapExecError(err)
		}

		return nil
	})
}
