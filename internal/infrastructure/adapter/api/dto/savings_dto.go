package dto

import "time"

// CreateSavingsGoalRequest is the savings goal submission payload
type CreateSavingsGoalRequest struct {
	GoalName            string     `json:"goalName" binding:"required"`
	TargetAmount        string     `json:"targetAmount" binding:"required"`
	MonthlyContribution string     `json:"monthlyContribution" binding:"required"`
	TargetDate          *time.Time `json:"targetDate"`
}
