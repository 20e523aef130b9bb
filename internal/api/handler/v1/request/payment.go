package request

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"go.uber.org/zap/zapcore"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

// CardData accepts the card number as a JSON number or a numeric string.
type CardData struct {
	Issuer         string      `json:"issuer" example:"VISA"`
	Number         json.Number `json:"number" swaggertype:"string" example:"4111111111111111"`
	Name           string      `json:"name"`
	ExpirationDate string      `json:"expirationDate" example:"12/30"`
	CVV            string      `json:"cvv"`
}

func (c *CardData) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Issuer, validation.Required),
		validation.Field(&c.Number, validation.Required, is.Digit, validation.Length(12, 19)),
	)
}

// MarshalLogObject logs the card with the number masked to its last digits.
func (c CardData) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("issuer", c.Issuer)
	enc.AddString("number", maskCardNumber(c.Number.String()))
	return nil
}

func (c CardData) ToDomain() domain.CardData {
	return domain.CardData{
		Issuer:         c.Issuer,
		Number:         c.Number.String(),
		Name:           c.Name,
		ExpirationDate: c.ExpirationDate,
		CVV:            c.CVV,
	}
}

func maskCardNumber(number string) string {
	last := domain.CardData{Number: number}.LastDigits()
	return strings.Repeat("*", len(number)-len(last)) + last
}

type ProcessPaymentRequest struct {
	TicketID uint      `json:"ticketId"`
	CardData *CardData `json:"cardData"`
}

func (req *ProcessPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketID, validation.Required),
		validation.Field(&req.CardData, validation.Required),
	)
}
