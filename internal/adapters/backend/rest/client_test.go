package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

type stubSessions struct {
	session domain.Session
	err     error
}

func (s *stubSessions) Current(context.Context) (domain.Session, error) {
	return s.session, s.err
}

func (s *stubSessions) Save(context.Context, domain.Session) error { return nil }
func (s *stubSessions) Clear(context.Context) error                { return nil }

func newTestClient(t *testing.T, handler http.HandlerFunc, sessions *stubSessions) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var store ports.SessionStore
	if sessions != nil {
		store = sessions
	}

	client, err := NewClient(server.URL, server.Client(), store)
	require.NoError(t, err)

	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient("  ", nil, nil)
	require.ErrorIs(t, err, domain.ErrBaseURLRequired)
}

func TestRequestAttachesBearerTokenFromSession(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"balance":"100","currency":"INR"}`)
	}, &stubSessions{session: domain.Session{ID: "CUST-42"}})

	_, err := client.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer CUST-42", gotAuth)
}

func TestRequestOmitsAuthHeaderWithoutSession(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, hasAuth = r.Header.Get("Authorization"), r.Header.Get("Authorization") != ""
		io.WriteString(w, `{"balance":"0","currency":"INR"}`)
	}, &stubSessions{err: domain.ErrNoSession})

	_, err := client.GetBalance(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth, "unexpected Authorization header %q", gotAuth)
}

func TestErrorExtractionPrefersJSONErrorField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"insufficient funds"}`)
	}, nil)

	err := client.Transfer(context.Background(), "A", "B", 100, "rent")
	require.Error(t, err)
	assert.Equal(t, "insufficient funds", err.Error())
}

func TestErrorExtractionFallsBackToMessageField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"message":"session expired"}`)
	}, nil)

	_, err := client.GetBalance(context.Background())
	require.Error(t, err)
	assert.Equal(t, "session expired", err.Error())
}

func TestErrorExtractionUsesRawBodyWhenNotJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream unavailable")
	}, nil)

	_, err := client.GetBalance(context.Background())
	require.Error(t, err)
	assert.Equal(t, "upstream unavailable", err.Error())
}

func TestErrorExtractionGenericLineForEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	_, err := client.GetBalance(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Request failed: 500 Internal Server Error", err.Error())
}

func TestGetStatementSendsOnlyPopulatedRangeParams(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `[]`)
	}, nil)

	_, err := client.GetStatement(context.Background(), &domain.TransactionRange{
		StartDate:       1700000000000000000,
		TransactionType: domain.TransactionDebit,
	})
	require.NoError(t, err)
	assert.Equal(t, "startDate=1700000000000000000&transactionType=debit", gotQuery)
}

func TestGetStatementWithNilRangeSendsNoQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `[]`)
	}, nil)

	_, err := client.GetStatement(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestSearchTransactionsEncodesKeyword(t *testing.T) {
	var gotKeyword string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKeyword = r.URL.Query().Get("keyword")
		io.WriteString(w, `[]`)
	}, nil)

	_, err := client.SearchTransactions(context.Background(), "rent & utilities")
	require.NoError(t, err)
	assert.Equal(t, "rent & utilities", gotKeyword)
}

func TestGetStatementDecodesBigintStrings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"9007199254740993","amount":"150000000","description":"bonus","transactionType":"credit","timestamp":"1700000000000000000"}]`)
	}, nil)

	transactions, err := client.GetStatement(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, int64(9007199254740993), transactions[0].ID)
	assert.Equal(t, int64(150000000), transactions[0].Amount)
	assert.Equal(t, int64(1700000000000000000), transactions[0].Timestamp)
	assert.Equal(t, domain.TransactionCredit, transactions[0].TransactionType)
}

func TestGetCallerAccountEmptyBodyMeansAbsent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, nil)

	account, err := client.GetCallerAccount(context.Background())
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestTransferEncodesAmountAsString(t *testing.T) {
	var gotBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}, nil)

	err := client.Transfer(context.Background(), "A", "B", 9007199254740993, "big one")
	require.NoError(t, err)
	assert.Contains(t, string(gotBody), `"amount":"9007199254740993"`)
	assert.Contains(t, string(gotBody), `"fromAccount":"A"`)
}

func TestEndpointRouting(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}, nil)

	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{
			name:   "update profile",
			call:   func() error { return client.UpdateProfile(context.Background(), "N") },
			method: http.MethodPut,
			path:   "/profile",
		},
		{
			name:   "deposit",
			call:   func() error { return client.Deposit(context.Background(), 1, "d") },
			method: http.MethodPost,
			path:   "/deposit",
		},
		{
			name:   "withdraw",
			call:   func() error { return client.Withdraw(context.Background(), 1, "w") },
			method: http.MethodPost,
			path:   "/withdraw",
		},
		{
			name:   "update settings",
			call:   func() error { return client.UpdateSettings(context.Background(), domain.DefaultSettings()) },
			method: http.MethodPut,
			path:   "/settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.method, gotMethod)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}
