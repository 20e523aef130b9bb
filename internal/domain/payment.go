package domain

import "time"

const cardLastDigitsLen = 4

type Payment struct {
	ID             uint      `json:"id"`
	TicketID       uint      `json:"ticketId"`
	Value          int       `json:"value"`
	CardIssuer     string    `json:"cardIssuer"`
	CardLastDigits string    `json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CardData is the card submitted with a payment. Only the issuer and the last digits of
// Number outlive the request.
type CardData struct {
	Issuer         string
	Number         string
	Name           string
	ExpirationDate string
	CVV            string
}

// LastDigits returns the last four characters of the card number, or the whole number
// when it is shorter.
func (c CardData) LastDigits() string {
	if len(c.Number) <= cardLastDigitsLen {
		return c.Number
	}
	return c.Number[len(c.Number)-cardLastDigitsLen:]
}
