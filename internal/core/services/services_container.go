package services

import (
	"fmt"

	"github.com/SscSPs/bokforing_app/internal/core/payroll"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	calculator, err := payroll.NewCalculator(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load withholding tables: %w", err)
	}

	container := &portssvc.ServiceContainer{}
	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, container.Account)
	container.Posting = NewDocumentPostingService(repos, container.Ledger,
		WithBankAccount(cfg.CompanyBankAccount),
	)
	container.Payroll = NewPayrollService(calculator, container.Ledger,
		WithTaxDefaults(cfg.DefaultTaxTable, cfg.DefaultTaxColumn),
		WithPayrollBankAccount(cfg.CompanyBankAccount),
	)

	return container, nil
}
