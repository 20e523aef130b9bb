package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/pkg/jwthelper"
)

const signingKey = "test-signing-key"

var errNoSession = fmt.Errorf("session %w", domain.ErrUnauthorized)

type fakeSessions map[string]domain.Session

func (f fakeSessions) FindSession(_ context.Context, token string) (domain.Session, error) {
	s, ok := f[token]
	if !ok {
		return domain.Session{}, errNoSession
	}
	return s, nil
}

type failingSessions struct{}

func (failingSessions) FindSession(context.Context, string) (domain.Session, error) {
	return domain.Session{}, errors.New("connection refused")
}

func newRouter(sessions SessionFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", NewAuthenticator(signingKey, sessions).VerifyJWT(), func(ctx *gin.Context) {
		userID, _ := ctx.Get(ContextUserIDKey)
		ctx.JSON(http.StatusOK, gin.H{"userId": userID})
	})

	return r
}

func issue(t *testing.T, userID uint) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(signingKey), userID, "test", time.Hour)
	require.NoError(t, err)

	return token
}

func call(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)

	return w
}

func TestVerifyJWT(t *testing.T) {
	token := issue(t, 3)
	orphan := issue(t, 3)
	stolen := issue(t, 4)

	r := newRouter(fakeSessions{
		token:  {ID: 1, UserID: 3, Token: token},
		stolen: {ID: 2, UserID: 9, Token: stolen},
	})

	t.Run("accepts an active session", func(t *testing.T) {
		w := call(r, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":3}`, w.Body.String())
	})

	cases := map[string]string{
		"missing header":          "",
		"wrong scheme":            "Basic " + token,
		"empty token":             "Bearer ",
		"garbage token":           "Bearer not-a-jwt",
		"token without session":   "Bearer " + orphan,
		"session of another user": "Bearer " + stolen,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := call(r, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	t.Run("session store failure is a server error", func(t *testing.T) {
		w := call(newRouter(failingSessions{}), "Bearer "+token)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
