package response

type BookingIDResponse struct {
	BookingID uint `json:"bookingId"`
}
