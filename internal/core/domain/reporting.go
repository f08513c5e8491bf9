package domain

import "github.com/shopspring/decimal"

// ProjectSummary is the per-project income/cost/profit rollup.
type ProjectSummary struct {
	ProjectID        string          `json:"projectID"`
	Name             string          `json:"name"`
	Status           ProjectStatus   `json:"status"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalDirectCosts decimal.Decimal `json:"totalDirectCosts"`
	NetProfit        decimal.Decimal `json:"netProfit"`
}

// MonthlySummary aggregates one (year, month) bucket. Buckets are independent,
// so summing them always reconciles with the all-time totals.
type MonthlySummary struct {
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	Income            decimal.Decimal `json:"income"`
	DirectCosts       decimal.Decimal `json:"directCosts"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// ProfitAndLossReport is the company-level view over a date range.
// GrossProfit is the sum of project net profits before overhead; NetProfit
// subtracts company operating expenses. Realized/Potential split project
// profit by project status at aggregation time.
type ProfitAndLossReport struct {
	Projects          []ProjectSummary `json:"projects"`
	Months            []MonthlySummary `json:"months"`
	GrossProfit       decimal.Decimal  `json:"grossProfit"`
	OperatingExpenses decimal.Decimal  `json:"operatingExpenses"`
	NetProfit         decimal.Decimal  `json:"netProfit"`
	RealizedProfit    decimal.Decimal  `json:"realizedProfit"`
	PotentialProfit   decimal.Decimal  `json:"potentialProfit"`
}
