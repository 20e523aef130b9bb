package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/domain"
)

type EnrollmentService interface {
	GetForUser(ctx context.Context, userID uint) (domain.Enrollment, error)
	Upsert(ctx context.Context, userID uint, enrollment domain.Enrollment) (domain.Enrollment, error)
}

type EnrollmentHandler struct {
	svc EnrollmentService
}

func NewEnrollmentHandler(svc EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		svc: svc,
	}
}

// HandleGetEnrollment godoc
// @Summary      Get the caller's enrollment
// @Tags         enrollments
// @Produce      json
// @Success      200  {object}  domain.Enrollment
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /enrollments [get]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleGetEnrollment(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	enrollment, err := h.svc.GetForUser(ctx.Request.Context(), userID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetEnrollment -> h.svc.GetForUser", err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// HandleUpsertEnrollment godoc
// @Summary      Create or update the caller's enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpsertEnrollmentRequest  true  "request body"
// @Success      200      {object}  domain.Enrollment
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Router       /enrollments [post]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleUpsertEnrollment(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpsertEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	enrollment, err := h.svc.Upsert(ctx.Request.Context(), userID, domain.Enrollment{
		Name:     req.Name,
		CPF:      req.CPF,
		Birthday: req.BirthdayTime(),
		Phone:    req.Phone,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpsertEnrollment -> h.svc.Upsert", err)
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}
