package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	snapshotsTable   = "roi_snapshots"
	snapshotsColumns = "id, product_id, snapshot_date, collected_at, total_sales, total_spend, total_budget, total_roi, roi_unbounded, total_orders, total_numbers, profit, margin_percent, channels"
)

// SnapshotRepository grava as coletas. Não existe update: cada coleta é uma nova linha.
type SnapshotRepository interface {
	Insert(ctx context.Context, snapshot *domain.Snapshot) error
	Latest(ctx context.Context, productID string, date time.Time) (*domain.Snapshot, error)
	ListSince(ctx context.Context, productID string, from time.Time) ([]*domain.Snapshot, error)
}

type snapshotRepository struct {
	conn postgres.Conn
}

func NewSnapshotRepository(conn postgres.Conn) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) Insert(ctx context.Context, snapshot *domain.Snapshot) error {
	return insertSnapshot(ctx, r.conn, snapshot)
}

func insertSnapshot(ctx context.Context, q postgres.Queryer, snapshot *domain.Snapshot) error {
	channelsJSON, err := encodeChannels(snapshot.Result.Channels)
	if err != nil {
		return err
	}

	totals := snapshot.Result.Totals

	query, args, err := squirrel.
		Insert(snapshotsTable).
		Columns(
			"id", "product_id", "snapshot_date", "collected_at",
			"total_sales", "total_spend", "total_budget", "total_roi", "roi_unbounded",
			"total_orders", "total_numbers", "profit", "margin_percent", "channels",
		).
		Values(
			snapshot.ID,
			snapshot.Result.ProductID,
			snapshot.Date.Format(time.DateOnly),
			snapshot.Result.Timestamp,
			totals.Sales,
			totals.Spend,
			totals.Budget,
			totals.ROI.Decimal(),
			totals.ROI.IsUnbounded(),
			totals.Orders,
			totals.Numbers,
			totals.Profit,
			totals.Margin,
			channelsJSON,
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

// Latest retorna a coleta mais recente do dia, ou nil
func (r *snapshotRepository) Latest(ctx context.Context, productID string, date time.Time) (*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"product_id": productID, "snapshot_date": date.Format(time.DateOnly)}).
		OrderBy("collected_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear coleta: %w", err)
	}

	return snapshot, nil
}

// ListSince retorna as coletas a partir da data, em ordem de coleta
func (r *snapshotRepository) ListSince(ctx context.Context, productID string, from time.Time) ([]*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select(snapshotsColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.GtOrEq{"snapshot_date": from.Format(time.DateOnly)}).
		OrderBy("collected_at ASC", "id ASC").
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

	snapshots := make([]*domain.Snapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear coletas: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}
	totals := &snapshot.Result.Totals

	var (
		roiValue     decimal.Decimal
		roiUnbounded bool
		channelsJSON []byte
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Result.ProductID,
		&snapshot.Date,
		&snapshot.Result.Timestamp,
		&totals.Sales,
		&totals.Spend,
		&totals.Budget,
		&roiValue,
		&roiUnbounded,
		&totals.Orders,
		&totals.Numbers,
		&totals.Profit,
		&totals.Margin,
		&channelsJSON,
	)
	if err != nil {
		return nil, err
	}

	totals.ROI = domain.NewROI(roiValue)
	if roiUnbounded {
		totals.ROI = domain.UnboundedROI()
	}

	snapshot.Result.Channels, err = decodeChannels(channelsJSON)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// channelRecord é o formato de cada canal na coluna channels.
// O ROI indefinido é gravado como flag, igual às colunas dos totais.
type channelRecord struct {
	Sales        decimal.Decimal `json:"sales"`
	Spend        decimal.Decimal `json:"spend"`
	Budget       decimal.Decimal `json:"budget"`
	ROI          decimal.Decimal `json:"roi"`
	ROIUnbounded bool            `json:"roi_unbounded"`
	Profit       decimal.Decimal `json:"profit"`
	Margin       decimal.Decimal `json:"margin"`
}

func encodeChannels(channels map[string]domain.ChannelSummary) ([]byte, error) {
	records := make(map[string]channelRecord, len(channels))
	for name, summary := range channels {
		roi, _ := summary.ROI.Value()
		records[name] = channelRecord{
			Sales:        summary.Sales,
			Spend:        summary.Spend,
			Budget:       summary.Budget,
			ROI:          roi,
			ROIUnbounded: summary.ROI.IsUnbounded(),
			Profit:       summary.Profit,
			Margin:       summary.Margin,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar canais para JSON: %w", err)
	}
	return data, nil
}

func decodeChannels(data []byte) (map[string]domain.ChannelSummary, error) {
	channels := make(map[string]domain.ChannelSummary)
	if len(data) == 0 {
		return channels, nil
	}

	var records map[string]channelRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("erro ao deserializar canais: %w", err)
	}

	for name, record := range records {
		roi := domain.NewROI(record.ROI)
		if record.ROIUnbounded {
			roi = domain.UnboundedROI()
		}

		channels[name] = domain.ChannelSummary{
			Sales:  record.Sales,
			Spend:  record.Spend,
			Budget: record.Budget,
			ROI:    roi,
			Profit: record.Profit,
			Margin: record.Margin,
		}
	}

	return channels, nil
}
