package screens

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/Dhayanand17/AQI/internal/components/users"
	"github.com/Dhayanand17/AQI/internal/session"
	"github.com/Dhayanand17/AQI/internal/shared/config"
)

func setupRouter(t *testing.T) (chi.Router, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  username TEXT PRIMARY KEY,
  password_hash TEXT NOT NULL
);
`)
	require.NoError(t, err)

	cfg := &config.Config{
		ReportURL:       "https://app.powerbi.com/view?r=test",
		BackgroundImage: "missing.jpg",
		SecretKey:       "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
	}

	manager, err := session.NewManager(cfg)
	require.NoError(t, err)

	service := users.NewService(users.NewRepo(db))
	return NewRouter(service, manager, cfg), db
}

// do runs one request against the router, carrying over cookies from a
// previous response the way a browser would.
func do(t *testing.T, router chi.Router, method, target string, form url.Values, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	if prev != nil {
		for _, c := range prev.Result().Cookies() {
			if c.MaxAge >= 0 && c.Value != "" {
				req.AddCookie(c)
			}
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIndex_FreshSessionShowsLogin(t *testing.T) {
	router, _ := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login to access AQI Dashboard")
	assert.NotContains(t, rec.Body.String(), "AIR QUALITY INSIGHTS DASHBOARD")
}

func TestSignupNavigation_NoAccountCreated(t *testing.T) {
	router, db := setupRouter(t)

	// Click "Sign Up" on the login screen.
	rec := do(t, router, http.MethodPost, "/login/signup", url.Values{}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := do(t, router, http.MethodGet, "/", nil, rec)
	assert.Contains(t, page.Body.String(), "Sign Up for an Account")

	// Click "Back to Login".
	rec = do(t, router, http.MethodPost, "/signup/back", url.Values{}, rec)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page = do(t, router, http.MethodGet, "/", nil, rec)
	assert.Contains(t, page.Body.String(), "Login to access AQI Dashboard")

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSignup_Validation(t *testing.T) {
	router, db := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/signup", url.Values{
		"username": {""}, "password": {"pw"}, "confirm_password": {"pw"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill out all fields.")

	rec = do(t, router, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"pw1"}, "confirm_password": {"pw2"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passwords do not match!")

	// Mismatched confirmation never reached the store.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	router, _ := setupRouter(t)

	form := url.Values{
		"username": {"alice"}, "password": {"pw1"}, "confirm_password": {"pw1"},
	}
	rec := do(t, router, http.MethodPost, "/signup", form, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = do(t, router, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"pw2"}, "confirm_password": {"pw2"},
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already exists! Please choose a different one.")
}

func TestSignup_SuccessReturnsToLoginWithoutAuthenticating(t *testing.T) {
	router, _ := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"pw1"}, "confirm_password": {"pw1"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?created=1", rec.Header().Get("Location"))

	page := do(t, router, http.MethodGet, "/?created=1", nil, rec)
	assert.Contains(t, page.Body.String(), "Account created successfully! Please log in.")
	assert.Contains(t, page.Body.String(), "Login to access AQI Dashboard")
	// Not auto-authenticated: the dashboard is not reachable yet.
	assert.NotContains(t, page.Body.String(), "AIR QUALITY INSIGHTS DASHBOARD")
}

func TestLogin_FailureShapesAreUniform(t *testing.T) {
	router, _ := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"pw1"}, "confirm_password": {"pw1"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	wrongPassword := do(t, router, http.MethodPost, "/login", url.Values{
		"username": {"alice"}, "password": {"pw2"},
	}, nil)
	unknownUser := do(t, router, http.MethodPost, "/login", url.Values{
		"username": {"mallory"}, "password": {"pw1"},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Contains(t, wrongPassword.Body.String(), "Invalid username or password!")
	// Identical user-visible message for both failure shapes.
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestLogin_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	router, db := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"pw1"}, "confirm_password": {"pw1"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	require.NoError(t, db.Close())

	rec = do(t, router, http.MethodPost, "/login", url.Values{
		"username": {"alice"}, "password": {"pw1"},
	}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Service unavailable. Please try again later.")
	assert.NotContains(t, rec.Body.String(), "Invalid username or password!")
}

func TestLoginLogout_FullFlow(t *testing.T) {
	router, _ := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/signup", url.Values{
		"username": {"alice"}, "password": {"pw1"}, "confirm_password": {"pw1"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	login := do(t, router, http.MethodPost, "/login", url.Values{
		"username": {"alice"}, "password": {"pw1"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, login.Code)
	require.Equal(t, "/", login.Header().Get("Location"))

	dashboard := do(t, router, http.MethodGet, "/", nil, login)
	assert.Contains(t, dashboard.Body.String(), "AIR QUALITY INSIGHTS DASHBOARD")
	assert.Contains(t, dashboard.Body.String(), "https://app.powerbi.com/view?r=test")

	logout := do(t, router, http.MethodPost, "/logout", url.Values{}, login)
	require.Equal(t, http.StatusSeeOther, logout.Code)

	// The session cookie is expired.
	cookies := logout.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	// A browser honoring the expiry is back on the login screen.
	page := do(t, router, http.MethodGet, "/", nil, logout)
	assert.Contains(t, page.Body.String(), "Login to access AQI Dashboard")
	assert.NotContains(t, page.Body.String(), "AIR QUALITY INSIGHTS DASHBOARD")
}
