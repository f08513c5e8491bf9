package dto

import (
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectSummaryResponse is one project's row in the P&L report.
type ProjectSummaryResponse struct {
	ProjectID        string          `json:"projectID"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalDirectCosts decimal.Decimal `json:"totalDirectCosts"`
	NetProfit        decimal.Decimal `json:"netProfit"`
}

// MonthlySummaryResponse is one (year, month) bucket in the P&L report.
type MonthlySummaryResponse struct {
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	Income            decimal.Decimal `json:"income"`
	DirectCosts       decimal.Decimal `json:"directCosts"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// ProfitAndLossResponse represents the profit and loss report response.
type ProfitAndLossResponse struct {
	FromDate string                   `json:"fromDate"`
	ToDate   string                   `json:"toDate"`
	Projects []ProjectSummaryResponse `json:"projects"`
	Months   []MonthlySummaryResponse `json:"months"`
	Summary  struct {
		GrossProfit       decimal.Decimal `json:"grossProfit"`
		OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
		NetProfit         decimal.Decimal `json:"netProfit"`
		RealizedProfit    decimal.Decimal `json:"realizedProfit"`
		PotentialProfit   decimal.Decimal `json:"potentialProfit"`
	} `json:"summary"`
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response.
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport, from, to time.Time) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Projects: make([]ProjectSummaryResponse, len(report.Projects)),
		Months:   make([]MonthlySummaryResponse, len(report.Months)),
	}

	for i, p := range report.Projects {
		response.Projects[i] = ProjectSummaryResponse{
			ProjectID:        p.ProjectID,
			Name:             p.Name,
			Status:           string(p.Status),
			TotalIncome:      p.TotalIncome,
			TotalDirectCosts: p.TotalDirectCosts,
			NetProfit:        p.NetProfit,
		}
	}

	for i, m := range report.Months {
		response.Months[i] = MonthlySummaryResponse{
			Year:              m.Year,
			Month:             m.Month,
			Income:            m.Income,
			DirectCosts:       m.DirectCosts,
			OperatingExpenses: m.OperatingExpenses,
			NetProfit:         m.NetProfit,
		}
	}

	response.Summary.GrossProfit = report.GrossProfit
	response.Summary.OperatingExpenses = report.OperatingExpenses
	response.Summary.NetProfit = report.NetProfit
	response.Summary.RealizedProfit = report.RealizedProfit
	response.Summary.PotentialProfit = report.PotentialProfit

	return response
}
