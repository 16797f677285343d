package dto

type ParseEmailRequest struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
	Sender  string `json:"sender" validate:"required"`
	EmailID string `json:"email_id"`
}

type ParsedTransactionResponse struct {
	Amount        string `json:"amount"`
	Merchant      string `json:"merchant"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	PaymentMethod string `json:"payment_method"`
}

type ParseEmailResponse struct {
	Success     bool                       `json:"success"`
	Message     string                     `json:"message,omitempty"`
	Transaction *ParsedTransactionResponse `json:"transaction,omitempty"`
	Expense     *ExpenseResponse           `json:"expense,omitempty"`
}

type PollingStatusResponse struct {
	IsPolling    bool    `json:"is_polling"`
	LastSyncTime *string `json:"last_sync_time"`
}
