package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rs/zerolog"

	"github.com/shop-tools/sales-atlas/pkg/models/api"
	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	salesmiddleware "github.com/shop-tools/sales-atlas/pkg/server/middleware"
	"github.com/shop-tools/sales-atlas/pkg/services/ledger"
	"github.com/shop-tools/sales-atlas/pkg/services/source"
)

const testSessionID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) NewSession() string {
	args := m.Called()
	return args.String(0)
}

func (m *mockLedger) ListSources(ctx context.Context) ([]domain.SourceProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SourceProfile), args.Error(1)
}

func (m *mockLedger) Reload(ctx context.Context, sessionID, sourceName string) (domain.ReloadStatus, error) {
	args := m.Called(ctx, sessionID, sourceName)
	return args.Get(0).(domain.ReloadStatus), args.Error(1)
}

func (m *mockLedger) Summary(
	ctx context.Context,
	sessionID, sourceName string,
	mode domain.PeriodMode,
	from, to time.Time,
) (domain.SummaryReport, []string, error) {
	args := m.Called(ctx, sessionID, sourceName, mode, from, to)
	var insights []string
	if args.Get(1) != nil {
		insights = args.Get(1).([]string)
	}
	return args.Get(0).(domain.SummaryReport), insights, args.Error(2)
}

func (m *mockLedger) Transactions(
	ctx context.Context,
	sessionID, sourceName string,
	mode domain.PeriodMode,
	from, to time.Time,
) ([]domain.Transaction, error) {
	args := m.Called(ctx, sessionID, sourceName, mode, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	svc := new(mockLedger)
	svc.On("NewSession").Return(testSessionID)

	router := ConfigureRouter(Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Ledger: svc,
			Logger: logger,
		},
	})
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	from, _ := time.Parse("2006-01-02", "2025-01-06")
	to, _ := time.Parse("2006-01-02", "2025-01-12")
	fetchedAt := time.Date(2025, time.January, 10, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		method         string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:   "ListSources",
			method: http.MethodGet,
			path:   "/api/v1/sources",
			setupMocks: func() {
				svc.On("ListSources", mock.Anything).
					Return([]domain.SourceProfile{{Name: "shop", SpreadsheetID: "sheet-123", Currency: "OMR"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expected:       []api.Source{{Name: "shop", Currency: "OMR"}},
			parseResponse:  unmarshalResponse[[]api.Source](),
		},
		{
			name:   "Reload",
			method: http.MethodPost,
			path:   "/api/v1/sources/shop/reload",
			setupMocks: func() {
				svc.On("Reload", mock.Anything, testSessionID, "shop").
					Return(domain.ReloadStatus{
						Source:      "shop",
						RowsLoaded:  42,
						RowsDropped: 3,
						FetchedAt:   fetchedAt,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected: api.ReloadStatus{
				Source:      "shop",
				RowsLoaded:  42,
				RowsDropped: 3,
				FetchedAt:   fetchedAt,
			},
			parseResponse: unmarshalResponse[api.ReloadStatus](),
		},
		{
			name:   "Reload_UnknownSource",
			method: http.MethodPost,
			path:   "/api/v1/sources/missing/reload",
			setupMocks: func() {
				svc.On("Reload", mock.Anything, testSessionID, "missing").
					Return(domain.ReloadStatus{}, ledger.ErrUnknownSource).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expected:       "unknown source\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:   "Reload_SourceUnavailable",
			method: http.MethodPost,
			path:   "/api/v1/sources/shop/reload",
			setupMocks: func() {
				svc.On("Reload", mock.Anything, testSessionID, "shop").
					Return(domain.ReloadStatus{},
						&source.UnavailableError{Source: "shop", Err: assert.AnError}).Once()
			},
			expectedStatus: http.StatusBadGateway,
			expected:       "source shop unavailable: assert.AnError general error for testing\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:   "GetSummary",
			method: http.MethodGet,
			path:   "/api/v1/sources/shop/summary?mode=weekly&from=2025-01-06&to=2025-01-12",
			setupMocks: func() {
				svc.On("Summary", mock.Anything, testSessionID, "shop", domain.PeriodWeekly, from, to).
					Return(domain.SummaryReport{
						Window:           domain.PeriodWindow{Start: from, End: to},
						Currency:         "OMR",
						TotalRevenue:     decimal.NewFromInt(25),
						TransactionCount: 2,
						AvgTicket:        decimal.RequireFromString("12.5"),
						ByStaff: []domain.GroupTotal{
							{Label: "Sam", Revenue: decimal.NewFromInt(25), Transactions: 2},
						},
						ByDay: []domain.DailyRevenue{
							{Date: time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(25)},
						},
					}, []string{"Top performer: Sam with OMR 25.00 across 2 cuts."}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: api.SummaryResponse{
				Report: api.SummaryReport{
					From:             "2025-01-06",
					To:               "2025-01-12",
					Currency:         "OMR",
					TotalRevenue:     25,
					TransactionCount: 2,
					AvgTicket:        12.5,
					ByStaff: []api.GroupTotal{
						{Label: "Sam", Revenue: 25, Transactions: 2},
					},
					ByDay: []api.DailyRevenue{
						{Date: "2025-01-07", Revenue: 25},
					},
				},
				Insights: []string{"Top performer: Sam with OMR 25.00 across 2 cuts."},
			},
			parseResponse: unmarshalResponse[api.SummaryResponse](),
		},
		{
			name:           "GetSummary_InvalidFromDate",
			method:         http.MethodGet,
			path:           "/api/v1/sources/shop/summary?from=invalid-date",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'from' date format. Expected format: YYYY-MM-DD\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "GetSummary_InvalidMode",
			method:         http.MethodGet,
			path:           "/api/v1/sources/shop/summary?mode=hourly",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expected:       "invalid 'mode'. Expected one of: daily, weekly, monthly\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:   "ListTransactions",
			method: http.MethodGet,
			path:   "/api/v1/sources/shop/transactions?mode=weekly&from=2025-01-06&to=2025-01-12",
			setupMocks: func() {
				svc.On("Transactions", mock.Anything, testSessionID, "shop", domain.PeriodWeekly, from, to).
					Return([]domain.Transaction{{
						Date:          time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC),
						Price:         decimal.RequireFromString("10.5"),
						StaffName:     "Sam",
						PaymentMethod: "Cash",
					}}, nil)
			},
			expectedStatus: http.StatusOK,
			expected: []api.Transaction{
				{Date: "2025-01-07", Price: 10.5, StaffName: "Sam", PaymentMethod: "Cash"},
			},
			parseResponse: unmarshalResponse[[]api.Transaction](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, nil)
			require.NoError(t, err, "Failed to build request")
			resp, err := http.DefaultClient.Do(req)
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

func TestWebAPI_SessionCookie(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	svc := new(mockLedger)
	svc.On("NewSession").Return(testSessionID).Once()
	svc.On("ListSources", mock.Anything).Return([]domain.SourceProfile{}, nil)

	testServer := httptest.NewServer(ConfigureRouter(Config{
		Dependencies: Dependencies{Ledger: svc, Logger: logger},
	}))
	defer testServer.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp, err := client.Get(testServer.URL + "/api/v1/sources")
	require.NoError(t, err)
	resp.Body.Close()

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == salesmiddleware.SessionCookie {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "first response issues the session cookie")
	assert.Equal(t, testSessionID, sessionCookie.Value)

	// The cookie rides the second request, so no new session is minted.
	resp, err = client.Get(testServer.URL + "/api/v1/sources")
	require.NoError(t, err)
	resp.Body.Close()

	svc.AssertNumberOfCalls(t, "NewSession", 1)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
