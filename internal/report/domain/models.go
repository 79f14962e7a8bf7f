package domain

import "context"

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	Clients struct {
		Total     int64 `json:"total"`
		New       int64 `json:"new"`
		Read      int64 `json:"read"`
		Responded int64 `json:"responded"`
		Active    int64 `json:"active"`
		Inactive  int64 `json:"inactive"`
	} `json:"clients"`
	Invoices struct {
		TotalAmount   float64 `json:"total_amount"`
		PaidAmount    float64 `json:"paid_amount"`
		UnpaidAmount  float64 `json:"unpaid_amount"`
		OverdueAmount float64 `json:"overdue_amount"`
	} `json:"invoices"`
	Finance struct {
		MonthIncome  float64 `json:"month_income"`
		MonthExpense float64 `json:"month_expense"`
		MonthNet     float64 `json:"month_net"`
	} `json:"finance"`
}

// MonthlyPoint is one month of the trailing series. Income and Expense cover
// completed finance records; Invoiced totals non-draft invoices issued that
// month.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expense  float64 `json:"expense"`
	Net      float64 `json:"net"`
	Invoiced float64 `json:"invoiced"`
}

type MonthlyReport struct {
	Points []MonthlyPoint `json:"points"`
}

type Service interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	// Monthly returns the trailing months series, oldest first. months is
	// clamped to [1, 24] and defaults to 6 when zero.
	Monthly(ctx context.Context, months int) (*MonthlyReport, error)
}
