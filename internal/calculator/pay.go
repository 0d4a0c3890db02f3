package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PayAssignment is a leader's assignment with the camp dates as stored.
type PayAssignment struct {
	CampID    string
	CampName  string
	StartDate string
	EndDate   string
}

// PayLine is the pay for a single camp assignment.
type PayLine struct {
	CampID   string
	CampName string
	Days     int
	Pay      decimal.Decimal
}

// PaySummary is one leader's pay across all assignments.
type PaySummary struct {
	LeaderID   string
	LeaderName string
	TotalPay   decimal.Decimal
	PerCamp    []PayLine

	// Skipped counts assignments left out because their camp dates could
	// not be parsed.
	Skipped int
}

// ParseDailyRate reads the daily pay rate setting. Empty, non-numeric and
// negative values yield zero.
func ParseDailyRate(raw string) decimal.Decimal {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

// CalculateLeaderPay multiplies rate by the inclusive day count of every
// assignment. Reversed date pairs count by absolute span. Assignments with
// unparsable dates are skipped and counted.
func CalculateLeaderPay(rate decimal.Decimal, assignments []PayAssignment) PaySummary {
	summary := PaySummary{
		TotalPay: decimal.Zero,
		PerCamp:  make([]PayLine, 0, len(assignments)),
	}

	for _, a := range assignments {
		start, err := ParseDate(a.StartDate)
		if err != nil {
			summary.Skipped++
			continue
		}
		end, err := ParseDate(a.EndDate)
		if err != nil {
			summary.Skipped++
			continue
		}

		days := InclusiveDays(start, end)
		pay := rate.Mul(decimal.NewFromInt(int64(days)))
		summary.TotalPay = summary.TotalPay.Add(pay)
		summary.PerCamp = append(summary.PerCamp, PayLine{
			CampID:   a.CampID,
			CampName: a.CampName,
			Days:     days,
			Pay:      pay,
		})
	}

	return summary
}
