package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

var (
	testDate      = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	testCollected = time.Date(2025, 7, 10, 15, 30, 0, 0, time.UTC)
)

func newMockConn(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewConnectionFromDB(db), mock
}

func snapshotRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "product_id", "snapshot_date", "collected_at", "total_sales", "total_spend", "total_budget",
		"total_roi", "roi_unbounded", "total_orders", "total_numbers", "profit", "margin_percent", "channels",
	})
}

func testSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		ID:   "snap1",
		Date: testDate,
		Result: domain.AggregationResult{
			Timestamp: testCollected,
			ProductID: "p1",
			Totals: domain.Totals{
				Sales:  decimal.NewFromInt(10000),
				Spend:  decimal.NewFromInt(3000),
				Budget: decimal.NewFromInt(4000),
				ROI:    domain.NewROI(decimal.RequireFromString("3.3333")),
				Profit: decimal.NewFromInt(7000),
				Margin: decimal.NewFromInt(70),
			},
			Channels: map[string]domain.ChannelSummary{
				domain.ChannelInstagram: domain.EmptyChannelSummary(),
			},
		},
	}
}

func TestSnapshotRepository_Insert(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSnapshotRepository(conn)

	mock.ExpectExec("INSERT INTO roi_snapshots").
		WithArgs(
			"snap1", "p1", "2025-07-10", testCollected,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), false,
			0, 0, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), testSnapshot()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_InsertErroDoBanco(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewSnapshotRepository(conn)

	mock.ExpectExec("INSERT INTO roi_snapshots").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key"})

	err := repo.Insert(context.Background(), testSnapshot())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "23505")
}

func TestSnapshotRepository_Latest(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, snapshot *domain.Snapshot, err error)
	}{
		{
			name: "Coleta encontrada",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM roi_snapshots WHERE (.+) ORDER BY collected_at DESC LIMIT 1").
					WithArgs("p1", "2025-07-10").
					WillReturnRows(snapshotRows().AddRow(
						"snap1", "p1", testDate, testCollected, "10000", "3000", "4000",
						"999.99", true, 40, 4000, "7000", "70",
						[]byte(`{"instagram":{"sales":6000,"spend":2000,"roi":3,"profit":4000,"margin":66.6667},"grupos":{"sales":100,"spend":0,"roi":999.99,"roi_unbounded":true,"profit":100,"margin":100}}`),
					))
			},
			validate: func(t *testing.T, snapshot *domain.Snapshot, err error) {
				require.NoError(t, err)
				require.NotNil(t, snapshot)
				assert.Equal(t, "snap1", snapshot.ID)
				assert.True(t, snapshot.Result.Totals.ROI.IsUnbounded())
				assert.Equal(t, 40, snapshot.Result.Totals.Orders)
				assert.True(t, decimal.NewFromInt(10000).Equal(snapshot.Result.Totals.Sales))
				assert.Equal(t, testCollected, snapshot.CollectedAt())

				instagram := snapshot.Result.Channels[domain.ChannelInstagram]
				assert.True(t, decimal.NewFromInt(3).Equal(instagram.ROI.Decimal()))
				assert.True(t, snapshot.Result.Channels[domain.ChannelGroups].ROI.IsUnbounded())
			},
		},
		{
			name: "Nenhuma coleta no dia",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM roi_snapshots").
					WillReturnRows(snapshotRows())
			},
			validate: func(t *testing.T, snapshot *domain.Snapshot, err error) {
				require.NoError(t, err)
				assert.Nil(t, snapshot)
			},
		},
		{
			name: "Erro na consulta",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM roi_snapshots").
					WillReturnError(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, snapshot *domain.Snapshot, err error) {
				assert.Error(t, err)
				assert.Nil(t, snapshot)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			tt.setup(mock)

			snapshot, err := NewSnapshotRepository(conn).Latest(context.Background(), "p1", testDate)
			tt.validate(t, snapshot, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// channelsArg guarda o JSON de canais enviado ao banco
type channelsArg struct {
	data []byte
}

func (a *channelsArg) Match(v driver.Value) bool {
	data, ok := v.([]byte)
	if ok {
		a.data = data
	}
	return ok
}

func TestSnapshotRepository_CanaisIdaEVolta(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Result.Channels = map[string]domain.ChannelSummary{
		domain.ChannelInstagram: {
			Sales:  decimal.NewFromInt(100000),
			Spend:  decimal.NewFromInt(50),
			Budget: decimal.NewFromInt(80),
			ROI:    domain.NewROI(decimal.NewFromInt(2000)),
			Profit: decimal.NewFromInt(99950),
			Margin: decimal.RequireFromString("99.95"),
		},
		domain.ChannelGroups: {
			Sales:  decimal.NewFromInt(100),
			Spend:  decimal.Zero,
			Budget: decimal.Zero,
			ROI:    domain.UnboundedROI(),
			Profit: decimal.NewFromInt(100),
			Margin: decimal.NewFromInt(100),
		},
	}

	conn, mock := newMockConn(t)
	repo := NewSnapshotRepository(conn)

	captured := &channelsArg{}
	mock.ExpectExec("INSERT INTO roi_snapshots").
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), captured,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Insert(context.Background(), snapshot))
	require.NotEmpty(t, captured.data)

	mock.ExpectQuery("SELECT (.+) FROM roi_snapshots").
		WillReturnRows(snapshotRows().AddRow(
			"snap1", "p1", testDate, testCollected, "10000", "3000", "4000",
			"3.3333", false, 0, 0, "7000", "70", captured.data,
		))

	loaded, err := repo.Latest(context.Background(), "p1", testDate)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	instagram := loaded.Result.Channels[domain.ChannelInstagram]
	assert.False(t, instagram.ROI.IsUnbounded())
	assert.True(t, decimal.NewFromInt(2000).Equal(instagram.ROI.Decimal()))
	assert.True(t, decimal.NewFromInt(80).Equal(instagram.Budget))

	groups := loaded.Result.Channels[domain.ChannelGroups]
	assert.True(t, groups.ROI.IsUnbounded())
	assert.True(t, domain.ROISentinel.Equal(groups.ROI.Decimal()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_ListSince(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery("SELECT (.+) FROM roi_snapshots WHERE product_id = \\$1 AND snapshot_date >= \\$2 ORDER BY collected_at ASC, id ASC").
		WithArgs("p1", "2025-07-04").
		WillReturnRows(snapshotRows().
			AddRow("a", "p1", testDate, testCollected, "100", "50", "0", "2", false, 1, 10, "50", "50", []byte(`{}`)).
			AddRow("b", "p1", testDate, testCollected.Add(30*time.Minute), "200", "50", "0", "4", false, 2, 20, "150", "75", nil))

	snapshots, err := NewSnapshotRepository(conn).ListSince(context.Background(), "p1", testDate.AddDate(0, 0, -6))
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "a", snapshots[0].ID)
	assert.True(t, decimal.NewFromInt(4).Equal(snapshots[1].Result.Totals.ROI.Decimal()))
	assert.NotNil(t, snapshots[1].Result.Channels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionLogRepository(t *testing.T) {
	columns := []string{"id", "snapshot_id", "log_date", "collected_at", "status", "message", "mapping_source"}

	t.Run("Insert sem coleta associada", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectExec("INSERT INTO collection_logs").
			WithArgs("log1", nil, "2025-07-10", testCollected, "error", "fonte indisponível", "database").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewCollectionLogRepository(conn).Insert(context.Background(), &domain.CollectionLog{
			ID:            "log1",
			Date:          testDate,
			CollectedAt:   testCollected,
			Status:        domain.CollectionStatusError,
			Message:       "fonte indisponível",
			MappingSource: domain.MappingSourceDatabase,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("LastByDate", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery("SELECT (.+) FROM collection_logs WHERE log_date = \\$1 ORDER BY collected_at DESC LIMIT 1").
			WithArgs("2025-07-10").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("log1", "snap1", testDate, testCollected, "degraded", "mapeamento padrão", "fallback"))

		log, err := NewCollectionLogRepository(conn).LastByDate(context.Background(), testDate)
		require.NoError(t, err)
		require.NotNil(t, log.SnapshotID)
		assert.Equal(t, "snap1", *log.SnapshotID)
		assert.Equal(t, domain.CollectionStatusDegraded, log.Status)
		assert.Equal(t, domain.MappingSourceFallback, log.MappingSource)
	})

	t.Run("LastByDate sem registros", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery("SELECT (.+) FROM collection_logs").WillReturnRows(sqlmock.NewRows(columns))

		log, err := NewCollectionLogRepository(conn).LastByDate(context.Background(), testDate)
		require.NoError(t, err)
		assert.Nil(t, log)
	})

	t.Run("CountByDate", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM collection_logs WHERE log_date = \\$1").
			WithArgs("2025-07-10").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := NewCollectionLogRepository(conn).CountByDate(context.Background(), testDate)
		require.NoError(t, err)
		assert.Equal(t, 7, count)
	})

	t.Run("ListSince", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery("SELECT (.+) FROM collection_logs WHERE log_date >= \\$1 ORDER BY collected_at ASC").
			WithArgs("2025-07-10").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("log1", nil, testDate, testCollected, "error", "falha", "database").
				AddRow("log2", "snap2", testDate, testCollected, "success", "ok", "database"))

		logs, err := NewCollectionLogRepository(conn).ListSince(context.Background(), testDate)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Nil(t, logs[0].SnapshotID)
		assert.Equal(t, "snap2", *logs[1].SnapshotID)
	})
}

func TestChannelMappingRepository_ListActive(t *testing.T) {
	conn, mock := newMockConn(t)
	mock.ExpectQuery("SELECT channel, account_id FROM channel_mappings WHERE is_active = \\$1").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"channel", "account_id"}).
			AddRow("grupos", "act_3").
			AddRow("instagram", "act_1").
			AddRow("instagram", "act_2"))

	mapping, err := NewChannelMappingRepository(conn).ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"act_1", "act_2"}, mapping[domain.ChannelInstagram])
	assert.Equal(t, []string{"act_3"}, mapping[domain.ChannelGroups])
}

func TestChannelMappingRepository_ListActiveVazio(t *testing.T) {
	conn, mock := newMockConn(t)
	mock.ExpectQuery("SELECT channel, account_id FROM channel_mappings").
		WillReturnRows(sqlmock.NewRows([]string{"channel", "account_id"}))

	mapping, err := NewChannelMappingRepository(conn).ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, mapping)
	assert.Empty(t, mapping)
}

func TestChannelMappingRepository_ReplaceAll(t *testing.T) {
	t.Run("Desativa as antigas e grava as novas", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE channel_mappings SET is_active = \\$1 WHERE NOT \\(account_id = ANY\\(\\$2\\)\\)").
			WithArgs(false, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO channel_mappings \\(account_id,channel,is_active\\) VALUES (.+) ON CONFLICT \\(account_id\\) DO UPDATE").
			WithArgs("act_9", "grupos", true, "act_1", "instagram", true).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := NewChannelMappingRepository(conn).ReplaceAll(context.Background(), domain.ChannelMapping{
			domain.ChannelOverall:   {},
			domain.ChannelInstagram: {"act_1"},
			domain.ChannelGroups:    {"act_9"},
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback quando a gravação falha", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE channel_mappings").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO channel_mappings").WillReturnError(errors.New("falha"))
		mock.ExpectRollback()

		err := NewChannelMappingRepository(conn).ReplaceAll(context.Background(), domain.ChannelMapping{
			domain.ChannelInstagram: {"act_1"},
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCampaignRepository(t *testing.T) {
	columns := []string{"product_id", "name", "roi_goal", "daily_budget", "target_sales", "updated_at"}

	t.Run("Get sem configuração", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery("SELECT (.+) FROM campaign_settings WHERE product_id = \\$1").
			WithArgs("p1").
			WillReturnError(sql.ErrNoRows)

		settings, err := NewCampaignRepository(conn).Get(context.Background(), "p1")
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("Get com configuração", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectQuery("SELECT (.+) FROM campaign_settings").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("p1", "Sorteio", "2.5", "10000", "30000", testCollected))

		settings, err := NewCampaignRepository(conn).Get(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "Sorteio", settings.Name)
		assert.True(t, decimal.RequireFromString("2.5").Equal(settings.ROIGoal))
	})

	t.Run("Upsert", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectExec("INSERT INTO campaign_settings (.+) ON CONFLICT \\(product_id\\) DO UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewCampaignRepository(conn).Upsert(context.Background(), &domain.CampaignSettings{
			ProductID:   "p1",
			Name:        "Sorteio",
			ROIGoal:     decimal.NewFromInt(2),
			DailyBudget: decimal.NewFromInt(10000),
			TargetSales: decimal.NewFromInt(30000),
			UpdatedAt:   testCollected,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSnapshotRecorder(t *testing.T) {
	snapshotID := "snap1"
	log := &domain.CollectionLog{
		ID:          "log1",
		SnapshotID:  &snapshotID,
		Date:        testDate,
		CollectedAt: testCollected,
		Status:      domain.CollectionStatusSuccess,
	}

	t.Run("Coleta e registro na mesma transação", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO roi_snapshots").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO collection_logs").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewSnapshotRecorder(conn).Record(context.Background(), testSnapshot(), log))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha no registro desfaz a coleta", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO roi_snapshots").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO collection_logs").WillReturnError(errors.New("falha"))
		mock.ExpectRollback()

		assert.Error(t, NewSnapshotRecorder(conn).Record(context.Background(), testSnapshot(), log))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha registrada sem coleta", func(t *testing.T) {
		conn, mock := newMockConn(t)
		mock.ExpectExec("INSERT INTO collection_logs").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewSnapshotRecorder(conn).RecordFailure(context.Background(), &domain.CollectionLog{
			ID:     "log2",
			Date:   testDate,
			Status: domain.CollectionStatusError,
		}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
