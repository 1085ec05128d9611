package models

// BudgetCategory represents a monthly spending limit for one category.
// Spent is accumulated by explicit "log spending" actions and is not
// derived from transactions.
type BudgetCategory struct {
	Base
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Budget int64  `json:"budget"`
	Spent  int64  `json:"spent"`
	Color  string `json:"color"`
}
