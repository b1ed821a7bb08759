package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

const (
	collectionLogsTable   = "collection_logs"
	collectionLogsColumns = "id, snapshot_id, log_date, collected_at, status, message, mapping_source"
)

// CollectionLogRepository registra cada tentativa de coleta
type CollectionLogRepository interface {
	Insert(ctx context.Context, log *domain.CollectionLog) error
	LastByDate(ctx context.Context, date time.Time) (*domain.CollectionLog, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
	ListSince(ctx context.Context, from time.Time) ([]*domain.CollectionLog, error)
}

type collectionLogRepository struct {
	conn postgres.Conn
}

func NewCollectionLogRepository(conn postgres.Conn) CollectionLogRepository {
	return &collectionLogRepository{
		conn: conn,
	}
}

func (r *collectionLogRepository) Insert(ctx context.Context, log *domain.CollectionLog) error {
	return insertCollectionLog(ctx, r.conn, log)
}

func insertCollectionLog(ctx context.Context, q postgres.Queryer, log *domain.CollectionLog) error {
	query, args, err := squirrel.
		Insert(collectionLogsTable).
		Columns("id", "snapshot_id", "log_date", "collected_at", "status", "message", "mapping_source").
		Values(
			log.ID,
			log.SnapshotID,
			log.Date.Format(time.DateOnly),
			log.CollectedAt,
			string(log.Status),
			log.Message,
			string(log.MappingSource),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

// LastByDate retorna o último registro do dia, ou nil
func (r *collectionLogRepository) LastByDate(ctx context.Context, date time.Time) (*domain.CollectionLog, error) {
	query, args, err := squirrel.
		Select(collectionLogsColumns).
		From(collectionLogsTable).
		Where(squirrel.Eq{"log_date": date.Format(time.DateOnly)}).
		OrderBy("collected_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	log, err := scanCollectionLog(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de coleta: %w", err)
	}

	return log, nil
}

func (r *collectionLogRepository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(collectionLogsTable).
		Where(squirrel.Eq{"log_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de coleta: %w", err)
	}

	return count, nil
}

func (r *collectionLogRepository) ListSince(ctx context.Context, from time.Time) ([]*domain.CollectionLog, error) {
	query, args, err := squirrel.
		Select(collectionLogsColumns).
		From(collectionLogsTable).
		Where(squirrel.GtOrEq{"log_date": from.Format(time.DateOnly)}).
		OrderBy("collected_at ASC").
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

	logs := make([]*domain.CollectionLog, 0)
	for rows.Next() {
		log, err := scanCollectionLog(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros de coleta: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}

func scanCollectionLog(row scanner) (*domain.CollectionLog, error) {
	log := &domain.CollectionLog{}
	var (
		snapshotID    sql.NullString
		status        string
		mappingSource string
	)

	err := row.Scan(
		&log.ID,
		&snapshotID,
		&log.Date,
		&log.CollectedAt,
		&status,
		&log.Message,
		&mappingSource,
	)
	if err != nil {
		return nil, err
	}

	if snapshotID.Valid {
		log.SnapshotID = &snapshotID.String
	}
	log.Status = domain.CollectionStatus(status)
	log.MappingSource = domain.MappingSource(mappingSource)

	return log, nil
}
