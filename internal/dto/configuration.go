package dto

// Pattern lists and keywords travel as JSON-encoded string arrays, the same
// encoding the parser reads from storage.

type BankPatternRequest struct {
	BankName              string `json:"bank_name" validate:"required"`
	Domain                string `json:"domain" validate:"required"`
	AmountPatterns        string `json:"amount_patterns" validate:"required"`
	MerchantPatterns      string `json:"merchant_patterns" validate:"required"`
	DatePatterns          string `json:"date_patterns" validate:"required"`
	PaymentMethodPatterns string `json:"payment_method_patterns" validate:"required"`
	IsActive              string `json:"is_active"`
}

type BankPatternResponse struct {
	ID                    string `json:"id"`
	BankName              string `json:"bank_name"`
	Domain                string `json:"domain"`
	AmountPatterns        string `json:"amount_patterns"`
	MerchantPatterns      string `json:"merchant_patterns"`
	DatePatterns          string `json:"date_patterns"`
	PaymentMethodPatterns string `json:"payment_method_patterns"`
	IsActive              string `json:"is_active"`
	CreatedAt             string `json:"created_at"`
}

type CategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Keywords string `json:"keywords" validate:"required"`
	IsActive string `json:"is_active"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Keywords  string `json:"keywords"`
	IsActive  string `json:"is_active"`
	CreatedAt string `json:"created_at"`
}
