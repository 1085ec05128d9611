package models

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeChecking   AccountType = "Checking"
	AccountTypeCreditCard AccountType = "Credit Card"
	AccountTypeInvestment AccountType = "Investment"
	AccountTypeCash       AccountType = "Cash"
)

// AccountTypes lists every supported account type in display order.
var AccountTypes = []AccountType{
	AccountTypeSavings,
	AccountTypeChecking,
	AccountTypeCreditCard,
	AccountTypeInvestment,
	AccountTypeCash,
}

// Valid reports whether t is one of the supported account types.
func (t AccountType) Valid() bool {
	for _, at := range AccountTypes {
		if t == at {
			return true
		}
	}
	return false
}

// Account represents a financial account held by the user.
// Balance is signed: credit cards and loans carry negative balances.
type Account struct {
	Base
	Name         string      `json:"name"`
	Institution  string      `json:"institution"`
	Type         AccountType `json:"type"`
	Balance      int64       `json:"balance"`
	LastActivity string      `json:"last_activity"`
	AccentColor  string      `json:"accent_color"`
	Number       string      `json:"number"`
}
