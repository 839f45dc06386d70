package dto

import "github.com/SscSPs/bokforing_app/internal/core/domain"

// AccountResponse defines the data returned for a chart-of-accounts entry.
type AccountResponse struct {
	Code  string              `json:"code"`
	Name  string              `json:"name"`
	Class domain.AccountClass `json:"class"`
}

// ToAccountResponses converts domain accounts to AccountResponse DTOs
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = AccountResponse{Code: a.Code, Name: a.Name, Class: a.Class}
	}
	return out
}
