package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_ListAgents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	st, err := NewCatalogStore(db)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, nom FROM utilisateurs ORDER BY nom`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nom"}).
			AddRow(3, "Awa").
			AddRow(7, "Moussa"))

	agents, err := st.ListAgents(context.Background())

	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, int64(3), agents[0].ID)
	assert.Equal(t, "Awa", agents[0].Name)
	assert.Equal(t, "Moussa", agents[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStore_ListAgents_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	st, err := NewCatalogStore(db)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, nom FROM utilisateurs`).
		WillReturnError(assert.AnError)

	_, err = st.ListAgents(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
