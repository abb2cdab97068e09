package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/models/store"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListArticles(ctx context.Context, activeOnly bool) ([]store.Article, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]store.Article), args.Error(1)
}

func (m *mockStore) CreateArticle(ctx context.Context, a store.Article) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) UpdateArticle(ctx context.Context, a store.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockStore) DeactivateArticle(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ListSites(ctx context.Context) ([]store.Site, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.Site), args.Error(1)
}

func (m *mockStore) CreateSite(ctx context.Context, s store.Site) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) UpdateSite(ctx context.Context, s store.Site) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStore) ListClients(ctx context.Context) ([]store.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.Client), args.Error(1)
}

func (m *mockStore) ListAgents(ctx context.Context) ([]store.Agent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.Agent), args.Error(1)
}

func (m *mockStore) ListSaleTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func TestCreateArticle_Validation(t *testing.T) {
	tests := []struct {
		name    string
		article domain.Article
		wantErr string
	}{
		{
			name:    "missing name",
			article: domain.Article{UnitPrice: 100},
			wantErr: "article name is required",
		},
		{
			name:    "negative price",
			article: domain.Article{Name: "Baguette", UnitPrice: -5},
			wantErr: "unit price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(mockStore)
			svc := NewService(st)

			_, err := svc.CreateArticle(context.Background(), tt.article)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
			st.AssertNotCalled(t, "CreateArticle")
		})
	}
}

func TestCreateArticle_AssignsIDAndActivates(t *testing.T) {
	st := new(mockStore)
	st.On("CreateArticle", mock.Anything, mock.Anything).Return(int64(42), nil)
	svc := NewService(st)

	created, err := svc.CreateArticle(context.Background(), domain.Article{Name: "Croissant", Type: "Viennoiserie", UnitPrice: 150})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.True(t, created.Active)
	st.AssertExpectations(t)
}

func TestUpdateArticle_RequiresID(t *testing.T) {
	svc := NewService(new(mockStore))

	err := svc.UpdateArticle(context.Background(), domain.Article{Name: "Baguette"})

	assert.ErrorIs(t, err, ErrInvalid)
}

func TestReferences_LoadsAllDimensions(t *testing.T) {
	st := new(mockStore)
	st.On("ListSites", mock.Anything).
		Return([]store.Site{{ID: 1, Name: "Fournil Centre"}}, nil)
	st.On("ListSaleTypes", mock.Anything).
		Return([]string{"Détail", "Gros"}, nil)
	st.On("ListArticles", mock.Anything, true).
		Return([]store.Article{{ID: 2, Name: "Baguette", Active: true}}, nil)
	st.On("ListClients", mock.Anything).
		Return([]store.Client{{ID: 9, Name: "Hôtel du Lac"}}, nil)
	st.On("ListAgents", mock.Anything).
		Return([]store.Agent{{ID: 3, Name: "Awa"}}, nil)
	svc := NewService(st)

	refs, err := svc.References(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Détail", "Gros"}, refs.Types)
	require.Len(t, refs.Sites, 1)
	assert.Equal(t, "Fournil Centre", refs.Sites[0].Name)
	require.Len(t, refs.Articles, 1)
	assert.Equal(t, "Baguette", refs.Articles[0].Name)
	require.Len(t, refs.Clients, 1)
	assert.Equal(t, "Hôtel du Lac", refs.Clients[0].Name)
	require.Len(t, refs.Agents, 1)
	assert.Equal(t, "Awa", refs.Agents[0].Name)
	st.AssertExpectations(t)
}

func TestReferences_PropagatesLoadError(t *testing.T) {
	st := new(mockStore)
	st.On("ListSites", mock.Anything).
		Return([]store.Site(nil), assert.AnError)
	svc := NewService(st)

	_, err := svc.References(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
