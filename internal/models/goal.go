package models

// Goal represents a savings target with a deadline.
// MonthlyNeeded is computed once when the goal is created.
type Goal struct {
	Base
	Name          string `json:"name"`
	Target        int64  `json:"target"`
	Current       int64  `json:"current"`
	Deadline      string `json:"deadline"`
	Color         string `json:"color"`
	Icon          string `json:"icon"`
	MonthlyNeeded int64  `json:"monthly_needed"`
}
