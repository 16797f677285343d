package dto

type CreateExpenseRequest struct {
	Amount        string  `json:"amount" validate:"required"`
	Merchant      string  `json:"merchant" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Notes         *string `json:"notes"`
}

type UpdateExpenseRequest struct {
	Amount        *string `json:"amount"`
	Merchant      *string `json:"merchant"`
	Category      *string `json:"category"`
	Date          *string `json:"date"`
	PaymentMethod *string `json:"payment_method"`
	Notes         *string `json:"notes"`
}

type ExpenseResponse struct {
	ID            string  `json:"id"`
	Amount        string  `json:"amount"`
	Merchant      string  `json:"merchant"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	Notes         *string `json:"notes,omitempty"`
	Source        string  `json:"source"`
	EmailID       *string `json:"email_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ExpenseStatsResponse struct {
	Total          float64            `json:"total"`
	ThisMonth      float64            `json:"this_month"`
	LastMonth      float64            `json:"last_month"`
	Average        float64            `json:"average"`
	Count          int                `json:"count"`
	CategoryTotals map[string]float64 `json:"category_totals"`
}
