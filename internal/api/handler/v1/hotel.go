package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/drivent-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/drivent-api/internal/domain"
)

type HotelService interface {
	ListHotels(ctx context.Context, userID uint) ([]domain.Hotel, error)
	GetHotelRooms(ctx context.Context, hotelID, userID uint) (domain.Hotel, error)
}

type HotelHandler struct {
	svc HotelService
}

func NewHotelHandler(svc HotelService) *HotelHandler {
	return &HotelHandler{
		svc: svc,
	}
}

// HandleGetHotels godoc
// @Summary      List hotels
// @Description  Requires a paid, in-person ticket whose type includes a hotel.
// @Tags         hotels
// @Produce      json
// @Success      200  {array}   domain.Hotel
// @Failure      401  {object}  response.Err
// @Failure      402  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /hotels [get]
// @Security BearerAuth
func (h *HotelHandler) HandleGetHotels(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hotels, err := h.svc.ListHotels(ctx.Request.Context(), userID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetHotels -> h.svc.ListHotels", err)
		return
	}

	ctx.JSON(http.StatusOK, hotels)
}

// HandleGetHotelRooms godoc
// @Summary      Get a hotel with its rooms
// @Tags         hotels
// @Produce      json
// @Param        hotelId  path      int  true  "hotel id"
// @Success      200      {object}  domain.Hotel
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      402      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /hotels/{hotelId} [get]
// @Security BearerAuth
func (h *HotelHandler) HandleGetHotelRooms(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hotelID, respErr := parseID("hotelId", ctx.Param("hotelId"))
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hotel, err := h.svc.GetHotelRooms(ctx.Request.Context(), hotelID, userID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetHotelRooms -> h.svc.GetHotelRooms", err)
		return
	}

	ctx.JSON(http.StatusOK, hotel)
}
