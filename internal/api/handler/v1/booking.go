package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/domain"
)

type BookingService interface {
	Create(ctx context.Context, userID, roomID uint) (uint, error)
	FindForUser(ctx context.Context, userID uint) (domain.Booking, error)
	Update(ctx context.Context, userID, roomID, bookingID uint) (uint, error)
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

// HandleGetBooking godoc
// @Summary      Get the caller's booking
// @Tags         booking
// @Produce      json
// @Success      200  {object}  domain.Booking
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /booking [get]
// @Security BearerAuth
func (h *BookingHandler) HandleGetBooking(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	booking, err := h.svc.FindForUser(ctx.Request.Context(), userID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetBooking -> h.svc.FindForUser", err)
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleCreateBooking godoc
// @Summary      Book a room
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        request  body      request.BookingRequest  true  "request body"
// @Success      200      {object}  response.BookingIDResponse
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /booking [post]
// @Security BearerAuth
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	bookingID, err := h.svc.Create(ctx.Request.Context(), userID, req.RoomID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateBooking -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusOK, response.BookingIDResponse{BookingID: bookingID})
}

// HandleUpdateBooking godoc
// @Summary      Move the caller's booking to another room
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        bookingId  path      int                     true  "booking id"
// @Param        request    body      request.BookingRequest  true  "request body"
// @Success      200        {object}  response.BookingIDResponse
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Router       /booking/{bookingId} [put]
// @Security BearerAuth
func (h *BookingHandler) HandleUpdateBooking(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	bookingID, respErr := parseID("bookingId", ctx.Param("bookingId"))
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updatedID, err := h.svc.Update(ctx.Request.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateBooking -> h.svc.Update", err)
		return
	}

	ctx.JSON(http.StatusOK, response.BookingIDResponse{BookingID: updatedID})
}
