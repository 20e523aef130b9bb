package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/domain"
)

type TicketService interface {
	ListTicketTypes(ctx context.Context) ([]domain.TicketType, error)
	GetTicketForUser(ctx context.Context, userID uint) (domain.Ticket, error)
	PurchaseTicket(ctx context.Context, userID, ticketTypeID uint) (domain.Ticket, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleGetTicketTypes godoc
// @Summary      List ticket types
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.TicketType
// @Failure      401  {object}  response.Err
// @Router       /tickets/types [get]
// @Security BearerAuth
func (h *TicketHandler) HandleGetTicketTypes(ctx *gin.Context) {
	types, err := h.svc.ListTicketTypes(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetTicketTypes -> h.svc.ListTicketTypes", err)
		return
	}

	ctx.JSON(http.StatusOK, types)
}

// HandleGetTicket godoc
// @Summary      Get the caller's ticket
// @Tags         tickets
// @Produce      json
// @Success      200  {object}  domain.Ticket
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /tickets [get]
// @Security BearerAuth
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ticket, err := h.svc.GetTicketForUser(ctx.Request.Context(), userID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetTicket -> h.svc.GetTicketForUser", err)
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandlePurchaseTicket godoc
// @Summary      Reserve a ticket for the caller's enrollment
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.PurchaseTicketRequest  true  "request body"
// @Success      201      {object}  domain.Ticket
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /tickets [post]
// @Security BearerAuth
func (h *TicketHandler) HandlePurchaseTicket(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PurchaseTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.PurchaseTicket(ctx.Request.Context(), userID, req.TicketTypeID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePurchaseTicket -> h.svc.PurchaseTicket", err)
		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}
