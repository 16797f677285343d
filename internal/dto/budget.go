package dto

type CreateBudgetRequest struct {
	Category string `json:"category" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
}

type UpdateBudgetRequest struct {
	Amount string `json:"amount" validate:"required"`
}

type BudgetResponse struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	UpdatedAt string `json:"updated_at"`
}

type BudgetAlert struct {
	Category        string  `json:"category"`
	BudgetAmount    float64 `json:"budget_amount"`
	CurrentSpending float64 `json:"current_spending"`
	Percentage      float64 `json:"percentage"`
	Severity        string  `json:"severity"`
}

type BudgetAlertSummary struct {
	Warning  int `json:"warning"`
	Danger   int `json:"danger"`
	Exceeded int `json:"exceeded"`
}

type BudgetStatusResponse struct {
	HasAlerts bool               `json:"has_alerts"`
	Alerts    []BudgetAlert      `json:"alerts"`
	Summary   BudgetAlertSummary `json:"summary"`
}
