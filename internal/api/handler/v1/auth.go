package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/config"
	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/drivent-api/internal/service"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (domain.User, error)
	SignIn(ctx context.Context, email, password string) (domain.User, error)
	StartSession(ctx context.Context, userID uint, token string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleSignUp godoc
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.SignUpRequest  true  "request body"
// @Success      201      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users [post]
func (h *AuthHandler) HandleSignUp(ctx *gin.Context) {
	var req request.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.SignUp(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSignUp -> h.svc.SignUp", err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleSignIn godoc
// @Summary      Sign in and open a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.SignInRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/sign-in [post]
func (h *AuthHandler) HandleSignIn(ctx *gin.Context) {
	req := request.SignInRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.SignIn(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		renderServiceErr(ctx, "v1.HandleSignIn -> h.svc.SignIn", err)

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent(), h.conf.TokenTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleSignIn -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if err = h.svc.StartSession(ctx.Request.Context(), user.ID, token); err != nil {
		renderServiceErr(ctx, "v1.HandleSignIn -> h.svc.StartSession", err)

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}
