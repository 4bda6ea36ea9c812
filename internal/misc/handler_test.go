package misc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/setforge/setforge/internal/auth"
	"github.com/setforge/setforge/internal/telemetry/metrics"
	"github.com/setforge/setforge/pkg"

	"github.com/go-redis/redis_rate/v9"
	"github.com/go-redis/redismock/v8"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// use TestMain(m *testing.M) { ... } for
// global set-up/tear-down for all the tests in a package
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

type testRequestRateLimiter struct {
	// key to limit map
	Limits map[string]int
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	res := &redis_rate.Result{}

	foundLimit, ok := l.Limits[key]
	if !ok || foundLimit == 0 {
		return res, nil
	}

	res.Allowed = l.Limits[key]
	l.Limits[key]--

	return res, nil
}

func TestNewMiscHandler(t *testing.T) {
	mainRouter := mux.NewRouter()
	handler := NewHandler("dummy", &auth.Service{})
	handler.SetupRoutes(mainRouter, nil, metrics.NewTestManager(), 5)
	require.NotNil(t, handler)
	require.NotNil(t, mainRouter)

	for caseName, route := range map[string]struct {
		name   string
		path   string
		method string
	}{
		"route-get": {
			name:   "root",
			path:   "/",
			method: "GET",
		},
		"route-post": {
			name:   "root",
			path:   "/",
			method: "POST",
		},
		"version": {
			name:   "version",
			path:   "/version",
			method: "GET",
		},
		"login": {
			name:   "login",
			path:   "/a/login",
			method: "POST",
		},
		"logout": {
			name:   "logout",
			path:   "/a/logout",
			method: "GET",
		},
		"logout-options": {
			name:   "logout",
			path:   "/a/logout",
			method: "OPTIONS",
		},
	} {
		t.Run(caseName, func(t *testing.T) {
			req, err := http.NewRequest(route.method, route.path, nil)
			require.NoError(t, err)

			routeMatch := &mux.RouteMatch{}
			route := mainRouter.Get(route.name)
			require.NotNil(t, route)
			isMatch := route.Match(req, routeMatch)
			assert.True(t, isMatch, caseName)
		})
	}
}

func loginRouterForTests(
	t *testing.T,
	authService *auth.Service,
	reqRateLimiter *testRequestRateLimiter,
) *mux.Router {
	t.Helper()

	r := mux.NewRouter()
	handler := NewHandler("dummy", authService)
	handler.SetupRoutes(r, reqRateLimiter, metrics.NewTestManager(), 5)

	return r
}

func TestLogin(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	passwordHash, err := pkg.HashPassword("testpass")
	require.NoError(t, err)

	authService := auth.NewAuthService(&auth.Admin{
		Username:     "testuser",
		PasswordHash: passwordHash,
	}, time.Hour, rdb)
	testToken := "test_token"
	authService.RandStringFunc = func(s int) (string, error) {
		return testToken, nil
	}

	reqRateLimiter := &testRequestRateLimiter{
		Limits: map[string]int{"login": 2},
	}
	r := loginRouterForTests(t, authService, reqRateLimiter)

	redisMock.Regexp().ExpectSet("setforge-service-session||"+testToken, `\d+`, 0).SetVal("OK")
	redisMock.ExpectSAdd("setforge-service-sessions", testToken).SetVal(1)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/a/login", nil)
	req.PostForm = url.Values{}
	req.PostForm.Add("username", "testuser")
	req.PostForm.Add("password", "testpass")
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"token": "test_token"}`, rr.Body.String())

	// wrong credentials
	rr = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/a/login", nil)
	req.PostForm = url.Values{}
	req.PostForm.Add("username", "testuser")
	req.PostForm.Add("password", "wrongpass")
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "wrong credentials"))

	// rate limit exhausted by now
	rr = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/a/login", nil)
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusTooEarly, rr.Code)
}

func TestLogin_MissingCredentials(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	authService := auth.NewAuthService(&auth.Admin{Username: "testuser"}, time.Hour, rdb)

	reqRateLimiter := &testRequestRateLimiter{
		Limits: map[string]int{"login": 10},
	}
	r := loginRouterForTests(t, authService, reqRateLimiter)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/a/login", nil)
	req.PostForm = url.Values{}
	req.PostForm.Add("username", "testuser")
	req.Header.Set("Origin", "test")

	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "password empty"))
}
