package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-api/internal/core/auth"
)

func guardEngine(j *auth.JWTer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("", AuthJWT(j))
	protected.GET("/whoami", func(c *gin.Context) {
		claims := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"uid": claims.UID, "role": claims.Role, "email": claims.Email})
	})
	admin := protected.Group("/admin", RequireAction(auth.ActionManageUsers))
	admin.GET("/users", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	return r
}

func newJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "timetable-api", TTL: 7 * 24 * time.Hour}
}

func do(r *gin.Engine, authz string, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	r := guardEngine(newJWTer())
	w := do(r, "", "/whoami")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Not authorized", body["message"])
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	j := newJWTer()
	r := guardEngine(j)
	tok, err := j.Issue("u-1", "staff", "a@x.com")
	require.NoError(t, err)

	// 没有 Bearer 前缀也算未携带令牌
	w := do(r, tok, "/whoami")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized")
}

func TestAuthJWT_TamperedToken(t *testing.T) {
	j := newJWTer()
	r := guardEngine(j)
	tok, err := j.Issue("u-1", "staff", "a@x.com")
	require.NoError(t, err)

	w := do(r, "Bearer "+tok[:len(tok)-2]+"xx", "/whoami")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalid")
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	j := newJWTer()
	expired := &auth.JWTer{Secret: j.Secret, Issuer: j.Issuer, TTL: -time.Hour}
	tok, err := expired.Issue("u-1", "staff", "a@x.com")
	require.NoError(t, err)

	w := do(guardEngine(j), "Bearer "+tok, "/whoami")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalid")
}

func TestAuthJWT_ValidTokenInjectsIdentity(t *testing.T) {
	j := newJWTer()
	tok, err := j.Issue("u-1", "staff", "a@x.com")
	require.NoError(t, err)

	w := do(guardEngine(j), "Bearer "+tok, "/whoami")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u-1", body["uid"])
	assert.Equal(t, "staff", body["role"])
	assert.Equal(t, "a@x.com", body["email"])
}

func TestRequireAction_StaffForbidden(t *testing.T) {
	j := newJWTer()
	r := guardEngine(j)

	staffTok, err := j.Issue("u-1", "staff", "a@x.com")
	require.NoError(t, err)
	w := do(r, "Bearer "+staffTok, "/admin/users")
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminTok, err := j.Issue("u-2", "admin", "b@x.com")
	require.NoError(t, err)
	w = do(r, "Bearer "+adminTok, "/admin/users")
	assert.Equal(t, http.StatusOK, w.Code)
}
