package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	LedgerRepo   LedgerRepositoryFacade
	DocumentRepo DocumentRepositoryFacade

	// UnitOfWork is nil for stores that cannot span a transaction across
	// repositories; callers then fall back to compensation.
	UnitOfWork UnitOfWork
}
