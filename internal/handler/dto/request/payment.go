package request

import "github.com/shopspring/decimal"

// PaymentWebhookRequest is the gateway callback body. ResponseCode "00"
// means the charge succeeded; anything else is a decline.
type PaymentWebhookRequest struct {
	ReservationID string          `json:"reservation_id" binding:"required,uuid"`
	TransactionID string          `json:"transaction_id" binding:"required"`
	ResponseCode  string          `json:"response_code" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Method        string          `json:"method" binding:"required"`
}
