package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCardData_LogMasksNumber(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	card := &CardData{Issuer: "VISA", Number: json.Number("4111111111111111"), Name: "Ana", CVV: "123"}
	log.Info("payment processed", zap.Object("card", card))

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	logged, ok := fields["card"].(map[string]interface{})
	require.True(t, ok, "card should be logged as an object, got %T", fields["card"])

	assert.Equal(t, "VISA", logged["issuer"])
	assert.Equal(t, "************1111", logged["number"])
	assert.NotContains(t, logged, "cvv")
	for _, v := range logged {
		assert.NotContains(t, v, "4111111111111111")
	}
}

func TestProcessPaymentRequest_Decode(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"numeric card number", `{"ticketId": 1, "cardData": {"issuer": "VISA", "number": 4111111111111111}}`, false},
		{"string card number", `{"ticketId": 1, "cardData": {"issuer": "VISA", "number": "4111111111111111"}}`, false},
		{"missing card", `{"ticketId": 1}`, true},
		{"missing ticket", `{"cardData": {"issuer": "VISA", "number": "4111111111111111"}}`, true},
		{"short number", `{"ticketId": 1, "cardData": {"issuer": "VISA", "number": "4111"}}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req ProcessPaymentRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))

			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "1111", req.CardData.ToDomain().LastDigits())
		})
	}
}
