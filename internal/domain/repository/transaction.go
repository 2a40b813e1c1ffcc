package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewListingRepository creates a listing repository bound to the transaction.
	NewListingRepository() ListingRepository

	// NewUserRepository creates a user repository bound to the transaction.
	NewUserRepository() UserRepository
}

// TransactionManager runs multi-step persistence work atomically. The listing
// registration quota check and insert go through it so two concurrent
// submissions from one owner cannot both pass the check.
type TransactionManager interface {
	// Execute runs fn within a single database transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
