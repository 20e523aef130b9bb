package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/domain"
)

type PaymentService interface {
	GetPaymentForTicket(ctx context.Context, ticketID, userID uint) (domain.Payment, error)
	CreatePayment(ctx context.Context, userID, ticketID uint, card domain.CardData) (domain.Payment, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleGetPayment godoc
// @Summary      Get the payment of a ticket
// @Tags         payments
// @Produce      json
// @Param        ticketId  query     int  true  "ticket id"
// @Success      200       {object}  domain.Payment
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /payments [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleGetPayment(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ticketID, respErr := parseID("ticketId", ctx.Query("ticketId"))
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	payment, err := h.svc.GetPaymentForTicket(ctx.Request.Context(), ticketID, userID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetPayment -> h.svc.GetPaymentForTicket", err)
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// HandleProcessPayment godoc
// @Summary      Pay for a ticket
// @Description  The charged value is the ticket type price. Only the card issuer and last four digits are stored.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProcessPaymentRequest  true  "request body"
// @Success      200      {object}  domain.Payment
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /payments/process [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleProcessPayment(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProcessPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	payment, err := h.svc.CreatePayment(ctx.Request.Context(), userID, req.TicketID, req.CardData.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleProcessPayment -> h.svc.CreatePayment", err)
		return
	}

	zap.L().Info("payment processed",
		zap.Uint("userID", userID),
		zap.Uint("ticketID", req.TicketID),
		zap.Object("card", req.CardData),
	)

	ctx.JSON(http.StatusOK, payment)
}
