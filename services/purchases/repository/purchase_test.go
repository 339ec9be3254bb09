package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

func setupPurchaseRepoTest(t *testing.T) (*PurchaseRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Redis stays nil here; cache behavior is covered separately and the
	// repository treats a missing cache as a pass-through.
	repo := &PurchaseRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func testPurchaseRecord(userID uuid.UUID) *models.PurchaseRecord {
	return &models.PurchaseRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Product:       "Organic cotton shirt",
		Brand:         "LoomKind",
		Category:      "Clothing",
		Price:         50,
		Currency:      "EUR",
		Origin:        "Local",
		TransportMode: "road",
		Eco:           true,
		ImpactScore:   50,
		RewardTier:    15,
		ImpactBand:    "Low Impact",
		Suggestion:    "Excellent choice! Keep it up.",
		CreatedAt:     time.Now().UTC(),
	}
}

func TestAppendPurchase(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	testCases := []struct {
		name       string
		badge      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, awarded bool, err error)
	}{
		{
			name:  "Success - First Badge Award",
			badge: "Eco Saver",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO purchases").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO user_badges").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, awarded bool, err error) {
				assert.NoError(t, err)
				assert.True(t, awarded)
			},
		},
		{
			name:  "Success - Badge Already Earned",
			badge: "Eco Saver",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO purchases").
					WillReturnResult(sqlmock.NewResult(0, 1))
				// ON CONFLICT DO NOTHING reports zero affected rows
				mock.ExpectExec("INSERT INTO user_badges").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, awarded bool, err error) {
				assert.NoError(t, err)
				assert.False(t, awarded)
			},
		},
		{
			name:  "Success - No Badge To Award",
			badge: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO purchases").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, awarded bool, err error) {
				assert.NoError(t, err)
				assert.False(t, awarded)
			},
		},
		{
			name:  "Error - Purchase Insert Fails",
			badge: "Eco Saver",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO purchases").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, awarded bool, err error) {
				assert.Error(t, err)
				assert.False(t, awarded)
				assert.Contains(t, err.Error(), "failed to insert purchase")
			},
		},
		{
			name:  "Error - Badge Insert Fails Rolls Back Purchase",
			badge: "Green Shopper",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO purchases").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO user_badges").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, awarded bool, err error) {
				assert.Error(t, err)
				assert.False(t, awarded)
				assert.Contains(t, err.Error(), "failed to award badge")
			},
		},
		{
			name:  "Error - Commit Fails",
			badge: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO purchases").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit failed"))
			},
			assertFunc: func(t *testing.T, awarded bool, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to commit transaction")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPurchaseRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			awarded, err := repo.AppendPurchase(context.Background(), testPurchaseRecord(userID), tc.badge)

			tc.assertFunc(t, awarded, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListPurchases(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	purchaseColumns := []string{
		"id", "user_id", "product", "brand", "category", "price", "currency",
		"origin", "transport_mode", "eco", "impact_score", "reward_tier",
		"impact_band", "suggestion", "created_at",
	}

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, records []*models.PurchaseRecord, err error)
	}{
		{
			name: "Success - Records In Creation Order",
			mockSetup: func(mock sqlmock.Sqlmock) {
				first := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
				second := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
				rows := sqlmock.NewRows(purchaseColumns).
					AddRow(uuid.New(), userID, "Refurbished laptop", "ReCircuit", "Electronics", 400.0, "EUR",
						"Domestic", "road", true, 700.0, 10, "Medium Impact", "Consider greener alternatives.", first).
					AddRow(uuid.New(), userID, "Desk lamp", "BrightCo", "Electronics", 30.0, "EUR",
						"Overseas", "sea", false, 324.0, 5, "Low Impact", "Excellent choice! Keep it up.", second)
				mock.ExpectQuery("^SELECT (.+) FROM purchases").
					WithArgs(userID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, records []*models.PurchaseRecord, err error) {
				assert.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, "Refurbished laptop", records[0].Product)
				assert.Equal(t, "Desk lamp", records[1].Product)
				assert.True(t, records[0].CreatedAt.Before(records[1].CreatedAt))
			},
		},
		{
			name: "Success - Empty Ledger",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM purchases").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows(purchaseColumns))
			},
			assertFunc: func(t *testing.T, records []*models.PurchaseRecord, err error) {
				assert.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name: "Error - Database Failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM purchases").
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, records []*models.PurchaseRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, records)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPurchaseRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			records, err := repo.ListPurchases(context.Background(), userID)

			tc.assertFunc(t, records, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTotalImpact(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	testCases := []struct {
		name       string
		month      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, total float64, err error)
	}{
		{
			name:  "Success - All Time",
			month: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT COALESCE\\(SUM\\(impact_score\\), 0\\) FROM purchases").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1024.5))
			},
			assertFunc: func(t *testing.T, total float64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1024.5, total)
			},
		},
		{
			name:  "Success - Month Filter",
			month: "2026-08",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT COALESCE\\(SUM\\(impact_score\\), 0\\) FROM purchases").
					WithArgs(userID, "2026-08").
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(160.0))
			},
			assertFunc: func(t *testing.T, total float64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 160.0, total)
			},
		},
		{
			name:  "Success - Empty Ledger Sums To Zero",
			month: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT COALESCE\\(SUM\\(impact_score\\), 0\\) FROM purchases").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
			},
			assertFunc: func(t *testing.T, total float64, err error) {
				assert.NoError(t, err)
				assert.Zero(t, total)
			},
		},
		{
			name:  "Error - Database Failure",
			month: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT COALESCE\\(SUM\\(impact_score\\), 0\\) FROM purchases").
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, total float64, err error) {
				assert.Error(t, err)
				assert.Zero(t, total)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPurchaseRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			total, err := repo.TotalImpact(context.Background(), userID, tc.month)

			tc.assertFunc(t, total, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTotalSpend(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	repo, mock, cleanup := setupPurchaseRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT COALESCE\\(SUM\\(price\\), 0\\) FROM purchases").
		WithArgs(userID, "2026-07").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(349.99))

	total, err := repo.TotalSpend(context.Background(), userID, "2026-07")

	assert.NoError(t, err)
	assert.Equal(t, 349.99, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseCount(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	repo, mock, cleanup := setupPurchaseRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM purchases").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.PurchaseCount(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEcoPurchaseCount(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	testCases := []struct {
		name      string
		month     string
		mockSetup func(mock sqlmock.Sqlmock)
		expected  int
	}{
		{
			name:  "All Time",
			month: "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM purchases").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			},
			expected: 3,
		},
		{
			name:  "Month Filter",
			month: "2026-08",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM purchases").
					WithArgs(userID, "2026-08").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPurchaseRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			count, err := repo.EcoPurchaseCount(context.Background(), userID, tc.month)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGroupByMonth(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	aggregateColumns := []string{"month", "total_spend", "total_impact", "purchase_count", "eco_count"}

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, aggregates []models.MonthlyAggregate, err error)
	}{
		{
			name: "Success - Chronological Months",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(aggregateColumns).
					AddRow("2026-07", 349.99, 700.0, 2, 1).
					AddRow("2026-08", 50.0, 50.0, 1, 1)
				mock.ExpectQuery("^SELECT to_char\\(created_at, 'YYYY-MM'\\) AS month").
					WithArgs(userID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, aggregates []models.MonthlyAggregate, err error) {
				assert.NoError(t, err)
				require.Len(t, aggregates, 2)
				assert.Equal(t, "2026-07", aggregates[0].Month)
				assert.Equal(t, 700.0, aggregates[0].TotalImpact)
				assert.Equal(t, 2, aggregates[0].PurchaseCount)
				assert.Equal(t, 1, aggregates[0].EcoCount)
				assert.Equal(t, "2026-08", aggregates[1].Month)
			},
		},
		{
			name: "Success - No Purchases",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT to_char\\(created_at, 'YYYY-MM'\\) AS month").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows(aggregateColumns))
			},
			assertFunc: func(t *testing.T, aggregates []models.MonthlyAggregate, err error) {
				assert.NoError(t, err)
				assert.Empty(t, aggregates)
			},
		},
		{
			name: "Error - Database Failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT to_char\\(created_at, 'YYYY-MM'\\) AS month").
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, aggregates []models.MonthlyAggregate, err error) {
				assert.Error(t, err)
				assert.Nil(t, aggregates)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPurchaseRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			aggregates, err := repo.GroupByMonth(context.Background(), userID)

			tc.assertFunc(t, aggregates, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBadges_PostgresFallback(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, badges []string, err error)
	}{
		{
			name: "Success - Badges In Award Order",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"badge"}).
					AddRow("Green Shopper").
					AddRow("Eco Saver")
				mock.ExpectQuery("^SELECT badge FROM user_badges").
					WithArgs(userID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, badges []string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"Green Shopper", "Eco Saver"}, badges)
			},
		},
		{
			name: "Success - No Badges",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT badge FROM user_badges").
					WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"badge"}))
			},
			assertFunc: func(t *testing.T, badges []string, err error) {
				assert.NoError(t, err)
				assert.Empty(t, badges)
			},
		},
		{
			name: "Error - Database Failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT badge FROM user_badges").
					WithArgs(userID).
					WillReturnError(sql.ErrConnDone)
			},
			assertFunc: func(t *testing.T, badges []string, err error) {
				assert.Error(t, err)
				assert.Nil(t, badges)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPurchaseRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			badges, err := repo.GetBadges(context.Background(), userID)

			tc.assertFunc(t, badges, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
