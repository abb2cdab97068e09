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

var saleCols = []string{
	"id", "detail_id", "site_id", "site", "type_vente", "agent_id", "agent", "client",
	"article_id", "article", "date_vente", "quantite", "prix_unitaire", "montant", "montant_encaisse",
}

func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }
func timep(v time.Time) *time.Time { return &v }

func TestSalesStore_CollectRows_AppliesFilterParameters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	saleDate := from.Add(48 * time.Hour)

	rows := sqlmock.NewRows(saleCols).
		AddRow(12, 31, 1, "Fournil Centre", "comptant", 4, "Awa", "Hotel Teranga",
			7, "Baguette", saleDate, 10.0, 150.0, 1500.0, 1500.0).
		AddRow(12, 32, 1, "Fournil Centre", "comptant", 4, "Awa", "Hotel Teranga",
			8, "Croissant", saleDate, 5.0, 300.0, 1500.0, nil)

	mock.ExpectQuery(`FROM ventes v`).
		WithArgs(from, int64(1), int64(7)).
		WillReturnRows(rows)

	s, err := NewSalesStore(db)
	require.NoError(t, err)

	got, err := s.CollectRows(context.Background(), store.SaleFilter{
		From:      timep(from),
		SiteID:    int64p(1),
		ArticleID: int64p(7),
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(12), got[0].SaleID)
	assert.Equal(t, "Baguette", got[0].ArticleName)
	assert.True(t, got[0].Collected.Valid)
	// NULL collected amount must survive the scan as invalid, not as zero-value noise
	assert.False(t, got[1].Collected.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesStore_CollectRows_NoFilterMeansNoArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM ventes v`).
		WillReturnRows(sqlmock.NewRows(saleCols))

	s, err := NewSalesStore(db)
	require.NoError(t, err)

	got, err := s.CollectRows(context.Background(), store.SaleFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesStore_CountSales(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	typ := "credit"
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT v\.id\) FROM ventes v`).
		WithArgs(typ).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	s, err := NewSalesStore(db)
	require.NoError(t, err)

	total, err := s.CountSales(context.Background(), store.SaleFilter{Type: strp(typ)})

	require.NoError(t, err)
	assert.Equal(t, 23, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesStore_CollectRows_QueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM ventes v`).
		WillReturnError(assert.AnError)

	s, err := NewSalesStore(db)
	require.NoError(t, err)

	_, err = s.CollectRows(context.Background(), store.SaleFilter{})

	assert.ErrorIs(t, err, assert.AnError)
}
