package production

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fournil-tools/fournil/pkg/models/store"
)

func productionRow(batchID, lineID int64, produced float64, unsold any) store.ProductionRow {
	r := store.ProductionRow{
		BatchID:     batchID,
		LineID:      lineID,
		SiteID:      2,
		SiteName:    "Fournil Plateau",
		AgentID:     9,
		AgentName:   "Moussa",
		ArticleID:   7,
		ArticleName: "Pain complet",
		Date:        time.Date(2025, 3, 4, 5, 30, 0, 0, time.UTC),
		Produced:    produced,
	}
	if u, ok := unsold.(float64); ok {
		r.Unsold = sql.NullFloat64{Float64: u, Valid: true}
	}
	return r
}

func TestGroupRows_SumsPerBatch(t *testing.T) {
	rows := []store.ProductionRow{
		productionRow(8, 80, 120, 10.0),
		productionRow(8, 81, 60, nil),
		productionRow(5, 50, 200, 0.0),
	}

	got := GroupRows(rows)

	require.Len(t, got, 2)
	assert.Equal(t, int64(8), got[0].ID)
	assert.Equal(t, 180.0, got[0].TotalProduced)
	assert.Equal(t, 10.0, got[0].TotalUnsold)
	assert.Equal(t, int64(5), got[1].ID)
	assert.Equal(t, 200.0, got[1].TotalProduced)
	require.Len(t, got[0].Details, 2)
	assert.Equal(t, int64(80), got[0].Details[0].ID)
}

func TestGroupRows_EmptyInput(t *testing.T) {
	got := GroupRows(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
