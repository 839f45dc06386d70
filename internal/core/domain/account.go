package domain

// AccountClass is the accounting class of a BAS account, implied by the
// leading digit of its code.
type AccountClass string

const (
	Asset     AccountClass = "ASSET"
	Liability AccountClass = "LIABILITY"
	Revenue   AccountClass = "REVENUE"
	Expense   AccountClass = "EXPENSE"
)

// Account is an entry in the chart of accounts. Accounts are reference data:
// seeded once and only read by the ledger core.
type Account struct {
	Code  string       `json:"code"`  // 4-digit BAS code, e.g. "1930"
	Name  string       `json:"name"`  // Display name
	Class AccountClass `json:"class"` // Derived from the first digit
}

// IsBankOrCash reports whether code is a cash or bank account (BAS 19xx).
func IsBankOrCash(code string) bool {
	return len(code) == 4 && code[:2] == "19"
}

// IsAccountsReceivable reports whether code is a customer receivable account (BAS 151x).
func IsAccountsReceivable(code string) bool {
	return len(code) == 4 && code[:3] == "151"
}

// IsAccountsPayable reports whether code is a supplier payable account (BAS 244x).
func IsAccountsPayable(code string) bool {
	return len(code) == 4 && code[:3] == "244"
}
