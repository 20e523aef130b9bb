package request

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const BirthdayLayout = "2006-01-02"

var phoneExp = regexp.MustCompile(`^\(?\d{2}\)?\s?9?\d{4}-?\d{4}$`)

type UpsertEnrollmentRequest struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday" example:"1990-05-17"`
	Phone    string `json:"phone" example:"(21) 98999-9999"`
}

func (req *UpsertEnrollmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(3, 0)),
		validation.Field(&req.CPF, validation.Required, is.Digit, validation.Length(11, 11)),
		validation.Field(&req.Birthday, validation.Required, validation.Date(BirthdayLayout)),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
	)
}

// BirthdayTime parses Birthday. Call it after Validate.
func (req *UpsertEnrollmentRequest) BirthdayTime() time.Time {
	t, _ := time.Parse(BirthdayLayout, req.Birthday)
	return t
}
