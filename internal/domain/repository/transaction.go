package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to run multi-step operations atomically
// without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the
	// function returns an error, the transaction is rolled back;
	// otherwise it is committed. All repositories obtained from the
	// factory share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
// Only the repositories involved in cascading deletes are exposed here;
// everything else operates outside explicit transactions.
type RepositoryFactory interface {
	// NewRequestRepository returns a RequestRepository bound to the transaction.
	NewRequestRepository() RequestRepository

	// NewConversationRepository returns a ConversationRepository bound to the transaction.
	NewConversationRepository() ConversationRepository

	// NewMessageRepository returns a MessageRepository bound to the transaction.
	NewMessageRepository() MessageRepository
}
