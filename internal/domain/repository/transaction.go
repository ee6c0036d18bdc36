package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to run multi-step atomic operations without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back so no
	// partial writes become visible. Otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside one Execute call shares a single
// database connection and commit point.
type RepositoryFactory interface {
	// Accounts returns an AccountRepository bound to the current transaction.
	Accounts() AccountRepository

	// Devices returns a DeviceRepository bound to the current transaction.
	Devices() DeviceRepository

	// Topics returns a TopicRepository bound to the current transaction.
	Topics() TopicRepository

	// Likes returns a LikeRepository bound to the current transaction.
	Likes() LikeRepository
}
