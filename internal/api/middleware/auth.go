package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/pkg/jwthelper"
)

// ContextUserIDKey holds the authenticated user id (uint) in the gin context.
const ContextUserIDKey = "userID"

var (
	errMissingToken   = errors.New("missing bearer token")
	errSessionExpired = errors.New("session is no longer active")
)

type SessionFinder interface {
	FindSession(ctx context.Context, token string) (domain.Session, error)
}

type Authenticator struct {
	jwtSigningKey string
	sessions      SessionFinder
}

func NewAuthenticator(jwtSigningKey string, sessions SessionFinder) *Authenticator {
	return &Authenticator{
		jwtSigningKey: jwtSigningKey,
		sessions:      sessions,
	}
}

// VerifyJWT accepts a request only when it carries a valid bearer token that is still
// held by a session belonging to the token's user.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken([]byte(a.jwtSigningKey), tokenStr)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		session, err := a.sessions.FindSession(ctx.Request.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				response.RenderErr(ctx, response.ErrUnauthorized(errSessionExpired))
				return
			}

			err = fmt.Errorf("middleware.VerifyJWT -> a.sessions.FindSession -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}
		if session.UserID != claims.UserID {
			response.RenderErr(ctx, response.ErrUnauthorized(errSessionExpired))
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
