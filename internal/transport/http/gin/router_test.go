package httpgin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/auth"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/filter"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/fixture"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/service"
	"github.com/soft-boni/admin-panel-venue-proximity/internal/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds, err := fixture.Load(context.Background(), fixture.NewEmbedded())
	require.NoError(t, err)

	ref, err := auth.NewReference("admin@venueproximity.com", "Admin123!", "123456", bcrypt.MinCost)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svcs := service.NewServices(
		ds,
		auth.NewRegistry(ref, session.NewMemoryStore(), time.Hour),
		auth.NewTokens("secret", time.Hour),
		nil,
		nil,
		service.Config{},
		log,
	)

	return NewRouter(svcs, log)
}

func do(t *testing.T, r http.Handler, method, path, token string, body any, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// signIn runs both steps and returns an authenticated token.
func signIn(t *testing.T, r http.Handler) string {
	t.Helper()

	w := do(t, r, http.MethodPost, "/auth/credentials", "", CredentialsRequest{
		Email: "admin@venueproximity.com", Password: "Admin123!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[SignInResponse](t, w).Token
	require.NotEmpty(t, token)

	w = do(t, r, http.MethodPost, "/auth/second-factor", token, SecondFactorRequest{Code: "123456"})
	require.Equal(t, http.StatusOK, w.Code)

	return token
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSignInFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/venues", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/auth/credentials", "", CredentialsRequest{Email: "x@x.com", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decode[SignInResponse](t, w)
	assert.Equal(t, "Invalid email or password.", resp.Error)
	assert.Equal(t, "credentials", resp.State)
	token := resp.Token
	require.NotEmpty(t, token)

	w = do(t, r, http.MethodPost, "/auth/second-factor", token, SecondFactorRequest{Code: "123456"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, "/auth/credentials", token, CredentialsRequest{
		Email: "admin@venueproximity.com", Password: "Admin123!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[SignInResponse](t, w)
	assert.Equal(t, "second_factor", resp.State)
	assert.Empty(t, resp.Token)

	w = do(t, r, http.MethodGet, "/api/venues", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodPost, "/auth/second-factor", token, SecondFactorRequest{Code: "000000"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid two-factor authentication code.", decode[SignInResponse](t, w).Error)

	w = do(t, r, http.MethodPost, "/auth/back", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[SignInResponse](t, w)
	assert.Equal(t, "credentials", resp.State)
	assert.Empty(t, resp.Error)

	w = do(t, r, http.MethodPost, "/auth/credentials", token, CredentialsRequest{
		Email: "admin@venueproximity.com", Password: "Admin123!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/auth/second-factor", token, SecondFactorRequest{Code: "123-456"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[SignInResponse](t, w).Authenticated)

	w = do(t, r, http.MethodGet, "/auth/state", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[SignInResponse](t, w).Authenticated)

	w = do(t, r, http.MethodGet, "/api/venues", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/venues", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidToken(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/auth/state", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListVenues(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r)

	w := do(t, r, http.MethodGet, "/api/venues?votes=high", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decode[[]filter.VenueRow](t, w)
	var ids []string
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	assert.Equal(t, []string{"1", "3", "4", "5"}, ids)
	assert.Equal(t, "Nightlife", rows[0].CategoryName)
	assert.Equal(t, 79, rows[0].OpenPercent)

	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	w = do(t, r, http.MethodGet, "/api/venues?votes=high", token, nil, "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, w.Code)

	w = do(t, r, http.MethodGet, "/api/venues?status=all&category=all&q=", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]filter.VenueRow](t, w), 6)

	w = do(t, r, http.MethodGet, "/api/venues?votes=huge", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVenueLookup(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r)

	w := do(t, r, http.MethodGet, "/api/venues/4", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	row := decode[filter.VenueRow](t, w)
	assert.Equal(t, "Riverside Tavern", row.Name)
	assert.Equal(t, "Tavern", row.SubcategoryName)

	w = do(t, r, http.MethodGet, "/api/venues/404", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/categories/dining/subcategories", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Subcategory](t, w), 3)

	w = do(t, r, http.MethodGet, "/api/categories/nope/subcategories", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVenueActions(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r)

	w := do(t, r, http.MethodPost, "/api/venues", token, AddVenueRequest{Name: "Only a name"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill in all fields", decode[ErrorResponse](t, w).Error)

	w = do(t, r, http.MethodPost, "/api/venues", token, AddVenueRequest{
		Name: "The Irish Pub", Location: "890 Madison Ave", Category: "nightlife", Subcategory: "pub",
	})
	require.Equal(t, http.StatusAccepted, w.Code)
	ack := decode[domain.Ack](t, w)
	assert.Equal(t, "Venue added successfully", ack.Message)
	assert.False(t, ack.Persisted)

	w = do(t, r, http.MethodDelete, "/api/venues/1", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, `Venue "The Blue Moon Bar" deleted successfully`, decode[domain.Ack](t, w).Message)

	// Still listed: acknowledgments do not change the collections.
	w = do(t, r, http.MethodGet, "/api/venues/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUsersAdsNotifications(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r)

	w := do(t, r, http.MethodGet, "/api/users?q=SARAH", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.User](t, w), 1)

	w = do(t, r, http.MethodPut, "/api/users/2", token, UpdateUserRequest{FullName: "Sarah J"})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "User updated successfully", decode[domain.Ack](t, w).Message)

	w = do(t, r, http.MethodGet, "/api/ads?status=running", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Advertisement](t, w), 2)

	w = do(t, r, http.MethodPost, "/api/ads", token, AdRequest{Title: "Quiz", RunNow: true})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "Advertisement created and running successfully", decode[domain.Ack](t, w).Message)

	w = do(t, r, http.MethodPost, "/api/ads/1/toggle", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "Advertisement stopped successfully", decode[domain.Ack](t, w).Message)

	w = do(t, r, http.MethodGet, "/api/notifications?read=unread", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Notification](t, w), 3)

	w = do(t, r, http.MethodPost, "/api/notifications/read-all", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "All notifications marked as read", decode[domain.Ack](t, w).Message)

	w = do(t, r, http.MethodPost, "/api/notifications/9/read", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsAndDashboard(t *testing.T) {
	r := newTestRouter(t)
	token := signIn(t, r)

	w := do(t, r, http.MethodPut, "/api/settings/two-factor", token, TwoFactorRequest{Enabled: false})
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "Two-factor authentication disabled", decode[domain.Ack](t, w).Message)

	w = do(t, r, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Stats struct {
			TotalVenues         int    `json:"total_venues"`
			AverageVotesPerUser string `json:"average_votes_per_user"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Stats.TotalVenues)
	assert.Equal(t, "199.2", body.Stats.AverageVotesPerUser)
}
