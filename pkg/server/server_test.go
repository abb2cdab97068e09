package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fournil-tools/fournil/pkg/models/api"
	"github.com/fournil-tools/fournil/pkg/models/domain"
	"github.com/fournil-tools/fournil/pkg/paging"
	productionsvc "github.com/fournil-tools/fournil/pkg/services/production"
	salessvc "github.com/fournil-tools/fournil/pkg/services/sales"
)

type mockSalesExplorer struct {
	mock.Mock
}

func (m *mockSalesExplorer) Explore(
	ctx context.Context,
	f domain.SaleFilter,
	page, pageSize int,
) (*salessvc.View, error) {
	args := m.Called(ctx, f, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*salessvc.View), args.Error(1)
}

func (m *mockSalesExplorer) Options(ctx context.Context, f domain.SaleFilter) (domain.SaleFilterOptions, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.SaleFilterOptions), args.Error(1)
}

type mockProductionExplorer struct {
	mock.Mock
}

func (m *mockProductionExplorer) Explore(
	ctx context.Context,
	f domain.ProductionFilter,
	page, pageSize int,
) (*productionsvc.View, error) {
	args := m.Called(ctx, f, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productionsvc.View), args.Error(1)
}

func (m *mockProductionExplorer) Options(ctx context.Context, f domain.ProductionFilter) (domain.ProductionFilterOptions, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.ProductionFilterOptions), args.Error(1)
}

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListArticles(ctx context.Context, activeOnly bool) ([]domain.Article, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *mockCatalogService) CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *mockCatalogService) UpdateArticle(ctx context.Context, a domain.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockCatalogService) DeactivateArticle(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogService) ListSites(ctx context.Context) ([]domain.Site, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *mockCatalogService) CreateSite(ctx context.Context, s domain.Site) (domain.Site, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(domain.Site), args.Error(1)
}

func (m *mockCatalogService) UpdateSite(ctx context.Context, s domain.Site) error {
	return m.Called(ctx, s).Error(0)
}

type mockExpenseService struct {
	mock.Mock
}

func (m *mockExpenseService) List(ctx context.Context, f domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *mockExpenseService) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(domain.Expense), args.Error(1)
}

func (m *mockExpenseService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockExpenseService) SummaryBySite(ctx context.Context, f domain.ExpenseFilter) ([]domain.ExpenseSummary, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.ExpenseSummary), args.Error(1)
}

type mockRecipeService struct {
	mock.Mock
}

func (m *mockRecipeService) List(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) Create(ctx context.Context, r domain.Recipe) (domain.Recipe, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) Update(ctx context.Context, r domain.Recipe) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRecipeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type staticRefs struct {
	refs domain.ReferenceData
}

func (s *staticRefs) References() domain.ReferenceData { return s.refs }

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockSales := new(mockSalesExplorer)
	mockProduction := new(mockProductionExplorer)
	mockCatalog := new(mockCatalogService)
	mockExpenses := new(mockExpenseService)
	mockRecipes := new(mockRecipeService)
	refs := &staticRefs{refs: domain.ReferenceData{
		Sites: []domain.Site{{ID: 1, Name: "Fournil Centre"}},
		Types: []string{"Gros", "Détail"},
	}}

	config := Config{
		Addr:               ":8080",
		ShutdownTimeout:    10 * time.Second,
		OptionsSource:      domain.OptionsFromResults,
		SalesPageSize:      10,
		ProductionPageSize: 15,
		Dependencies: Dependencies{
			Sales:      mockSales,
			Production: mockProduction,
			Catalog:    mockCatalog,
			Refs:       refs,
			Expenses:   mockExpenses,
			Recipes:    mockRecipes,
			Logger:     logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	saleDate := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	from, _ := time.Parse("2006-01-02", "2025-06-01")

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "GetSales",
			path: "/api/v1/sales?from=2025-06-01&page=1&page_size=10",
			setupMocks: func() {
				mockSales.On("Explore", mock.Anything, domain.SaleFilter{From: &from}, 1, 10).
					Return(&salessvc.View{
						Sales: []domain.Sale{{
							ID:      7,
							SiteID:  1,
							Site:    "Fournil Centre",
							Type:    "Détail",
							AgentID: 3,
							Agent:   "Awa",
							Date:    saleDate,
							Details: []domain.SaleDetail{{
								ID: 70, ArticleID: 2, Article: "Baguette",
								Quantity: 3, UnitPrice: 100, Total: 300, Collected: 300,
							}},
							TotalQuantity:  3,
							TotalAmount:    300,
							TotalCollected: 300,
						}},
						Page: paging.State{
							CurrentPage: 1, PageSize: 10, TotalItems: 1,
							TotalPages: 1, HasNext: false, HasPrevious: false,
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.PaginatedSales{
				Data: []api.Sale{{
					ID:      7,
					SiteID:  1,
					Site:    "Fournil Centre",
					Type:    "Détail",
					AgentID: 3,
					Agent:   "Awa",
					Date:    saleDate,
					Details: []api.SaleDetail{{
						ID: 70, ArticleID: 2, Article: "Baguette",
						Quantity: 3, UnitPrice: 100, Total: 300, Collected: 300,
					}},
					TotalQuantity:  3,
					TotalAmount:    300,
					TotalCollected: 300,
				}},
				Pagination: api.Pagination{
					Page: 1, PageSize: 10, Total: 1,
					TotalPages: 1, HasNext: false, HasPrevious: false,
				},
			},
			parseResponse: unmarshalResponse[api.PaginatedSales](),
		},
		{
			name:           "GetSales_InvalidFromDate",
			path:           "/api/v1/sales?from=invalid-date",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       api.Error{Error: "invalid 'from' date format, expected YYYY-MM-DD"},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name:           "GetReferences",
			path:           "/api/v1/refs",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected: api.ReferenceData{
				Sites:    []api.Site{{ID: 1, Name: "Fournil Centre"}},
				Types:    []string{"Gros", "Détail"},
				Articles: []api.Article{},
				Clients:  []api.Client{},
				Agents:   []api.Agent{},
			},
			parseResponse: unmarshalResponse[api.ReferenceData](),
		},
		{
			name: "ListArticles",
			path: "/api/v1/articles?active=true",
			setupMocks: func() {
				mockCatalog.On("ListArticles", mock.Anything, true).
					Return([]domain.Article{{ID: 2, Name: "Baguette", Type: "Pain", UnitPrice: 100, Active: true}}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.Article{
				{ID: 2, Name: "Baguette", Type: "Pain", UnitPrice: 100, Active: true},
			},
			parseResponse: unmarshalResponse[[]api.Article](),
		},
		{
			name: "GetExpenseSummary",
			path: "/api/v1/expenses/summary?site=1",
			setupMocks: func() {
				siteID := int64(1)
				mockExpenses.On("SummaryBySite", mock.Anything, domain.ExpenseFilter{SiteID: &siteID}).
					Return([]domain.ExpenseSummary{{SiteID: 1, Site: "Fournil Centre", Total: 4500}}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.ExpenseSummary{
				{SiteID: 1, Site: "Fournil Centre", Total: 4500},
			},
			parseResponse: unmarshalResponse[[]api.ExpenseSummary](),
		},
		{
			name: "GetSales_ExplorerError",
			path: "/api/v1/sales?site=99",
			setupMocks: func() {
				siteID := int64(99)
				mockSales.On("Explore", mock.Anything, domain.SaleFilter{SiteID: &siteID}, 1, 10).
					Return(nil, fmt.Errorf("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expected:       api.Error{Error: "failed to load sales"},
			parseResponse:  unmarshalResponse[api.Error](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
