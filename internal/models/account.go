package models

// Account is a row of the accounts table (chart of accounts).
type Account struct {
	Code  string `db:"code"`
	Name  string `db:"name"`
	Class string `db:"account_class"`
}
