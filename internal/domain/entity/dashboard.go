package entity

// GoalProgress is the per-goal slice of the dashboard view
type GoalProgress struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
}

// DashboardStats is the aggregate view computed from freshly read rows on
// every call. Monetary totals are fixed two-decimal-place strings.
type DashboardStats struct {
	TotalFunded      string         `json:"totalFunded"`
	TotalSavings     string         `json:"totalSavings"`
	TotalInvestments string         `json:"totalInvestments"`
	ReferralCount    int            `json:"referralCount"`
	ReferralEarnings string         `json:"referralEarnings"`
	SavingsProgress  []GoalProgress `json:"savingsProgress"`
}
