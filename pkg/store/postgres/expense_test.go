package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournil-tools/fournil/pkg/models/store"
)

func TestExpenseStore_SummaryBySite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`GROUP BY e\.site_id, st\.nom`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "site", "total"}).
			AddRow(1, "Fournil Centre", 125000.0).
			AddRow(2, "Fournil Plateau", 89000.0))

	s, err := NewExpenseStore(db)
	require.NoError(t, err)

	got, err := s.SummaryBySite(context.Background(), store.ExpenseFilter{From: timep(from), To: timep(to)})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 125000.0, got[0].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseStore_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM depenses`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := NewExpenseStore(db)
	require.NoError(t, err)

	err = s.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseStore_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO depenses`).
		WithArgs(int64(1), "farine T65", 45000.0, date).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	s, err := NewExpenseStore(db)
	require.NoError(t, err)

	id, err := s.Create(context.Background(), store.Expense{
		SiteID: 1, Label: "farine T65", Amount: 45000.0, Date: date,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}
