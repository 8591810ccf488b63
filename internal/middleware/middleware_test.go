package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": GetUserID(c), "admin": IsAdmin(c), "viewer": ViewerID(c)})
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/optional", OptionalAuth(secret), whoami)
	r.GET("/private", RequireAuth(secret), whoami)
	r.GET("/admin", RequireAuth(secret), RequireAdmin(), whoami)
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := authRouter()
	user, err := GenerateToken("auth0|1", "", secret, time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken("auth0|1", "", secret, -time.Minute)
	require.NoError(t, err)
	forged, err := GenerateToken("auth0|1", RoleAdmin, "other-secret", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/private", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/private", expired).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/private", forged).Code)

	w := get(r, "/private", user)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"auth0|1"`)
}

func TestRequireAuth_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "auth0|1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(authRouter(), "/private", signed).Code)
}

func TestRequireAuth_ReadsCookie(t *testing.T) {
	token, err := GenerateToken("auth0|7", "", secret, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	authRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"auth0|7"`)
}

func TestRequireAdmin(t *testing.T) {
	r := authRouter()
	user, _ := GenerateToken("auth0|1", "", secret, time.Hour)
	admin, _ := GenerateToken("auth0|2", RoleAdmin, secret, time.Hour)

	w := get(r, "/admin", user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "需要管理员权限")

	w = get(r, "/admin", admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin":true`)
}

func TestOptionalAuth(t *testing.T) {
	r := authRouter()

	w := get(r, "/optional", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":""`)

	token, _ := GenerateToken("auth0|1", "", secret, time.Hour)
	assert.Contains(t, get(r, "/optional", token).Body.String(), `"user":"auth0|1"`)
}

func TestGuestID_PersistsAcrossRequests(t *testing.T) {
	r := gin.New()
	r.Use(sessions.Sessions("session", cookie.NewStore([]byte("secret"))))
	r.Use(GuestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetGuestID(c)) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	guestID := first.Body.String()
	require.NotEmpty(t, guestID)
	cookies := first.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	second := httptest.NewRecorder()
	r.ServeHTTP(second, req)
	assert.Equal(t, guestID, second.Body.String())

	third := httptest.NewRecorder()
	r.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, guestID, third.Body.String())
}

func TestViewerID_PrefersUser(t *testing.T) {
	r := gin.New()
	r.Use(sessions.Sessions("session", cookie.NewStore([]byte("secret"))))
	r.Use(GuestID(), OptionalAuth(secret))
	r.GET("/", whoami)

	assert.NotContains(t, get(r, "/", "").Body.String(), `"viewer":""`)
	token, _ := GenerateToken("auth0|1", "", secret, time.Hour)
	assert.Contains(t, get(r, "/", token).Body.String(), `"viewer":"auth0|1"`)
}

func TestLoggerAndCORS(t *testing.T) {
	r := gin.New()
	r.Use(Logger(hclog.NewNullLogger()), CORS([]string{"https://app.example.com"}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
