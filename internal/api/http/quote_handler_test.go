package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/security"
	"locmaq-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubVerifier resolves fixed tokens to fixed identities.
type stubVerifier struct {
	identities map[string]*security.Identity
}

func (v *stubVerifier) Verify(_ context.Context, idToken string) (*security.Identity, error) {
	if id, ok := v.identities[idToken]; ok {
		return id, nil
	}
	return nil, security.ErrInvalidToken
}

type mockQuoteService struct {
	mock.Mock
}

func (m *mockQuoteService) CreateQuote(ctx context.Context, requesterID string, req *service.CreateQuoteRequest) (*domain.Quote, error) {
	args := m.Called(ctx, requesterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *mockQuoteService) SubmitTerms(ctx context.Context, ownerID, quoteID string, valueCents int32, conditions string) (*domain.Quote, error) {
	args := m.Called(ctx, ownerID, quoteID, valueCents, conditions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *mockQuoteService) UpdateStatus(ctx context.Context, actorID, quoteID string, newStatus domain.QuoteStatus) (*domain.Quote, error) {
	args := m.Called(ctx, actorID, quoteID, newStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}
func (m *mockQuoteService) ListForUser(ctx context.Context, userID string) ([]domain.Quote, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *mockQuoteService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Quote, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Quote), args.Error(1)
}
func (m *mockQuoteService) GetQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error) {
	args := m.Called(ctx, userID, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func newTestServer(quotes service.QuoteService) *httptest.Server {
	verifier := &stubVerifier{identities: map[string]*security.Identity{
		"requester-token": {UID: "requester-1", Email: "renter@example.com"},
		"admin-token":     {UID: "admin-1", Admin: true},
	}}
	handlers := NewHandlers(quotes, nil, nil, nil, nil, nil)
	return httptest.NewServer(NewRouter(handlers, verifier))
}

func doRequest(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestQuoteRoutes_RequireAuth(t *testing.T) {
	srv := newTestServer(new(mockQuoteService))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/quotes/requested")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/v1/quotes/requested", "bogus-token", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestQuoteUpdateStatus(t *testing.T) {
	quotes := new(mockQuoteService)
	srv := newTestServer(quotes)
	defer srv.Close()

	quotes.On("UpdateStatus", mock.Anything, "requester-1", "quote-1", domain.QuoteStatusAccepted).
		Return(&domain.Quote{ID: "quote-1", Status: domain.QuoteStatusAccepted}, nil)

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/quotes/quote-1/status",
		"requester-token", `{"status":"accepted"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	quotes.AssertExpectations(t)
}

func TestQuoteUpdateStatus_IllegalTransition(t *testing.T) {
	quotes := new(mockQuoteService)
	srv := newTestServer(quotes)
	defer srv.Close()

	quotes.On("UpdateStatus", mock.Anything, "requester-1", "quote-1", domain.QuoteStatusDelivered).
		Return(nil, fmt.Errorf("%w: pending -> delivered", domain.ErrIllegalTransition))

	resp := doRequest(t, http.MethodPost, srv.URL+"/api/v1/quotes/quote-1/status",
		"requester-token", `{"status":"delivered"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestQuoteGet_NotParticipant(t *testing.T) {
	quotes := new(mockQuoteService)
	srv := newTestServer(quotes)
	defer srv.Close()

	quotes.On("GetQuote", mock.Anything, "requester-1", "quote-1").
		Return(nil, domain.ErrUnauthorized)

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/quotes/quote-1", "requester-token", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminDashboard_RequiresAdminClaim(t *testing.T) {
	srv := newTestServer(new(mockQuoteService))
	defer srv.Close()

	resp := doRequest(t, http.MethodGet, srv.URL+"/api/v1/admin/dashboard", "requester-token", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
