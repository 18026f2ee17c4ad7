package storage

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on
// the more granular interfaces (TransactionStore, AccountStore, UserReader)
// instead of this one.
type Storage interface {
	UserReader
	AccountStore
	TransactionStore
}

// LifecycleStore defines the slice of the data layer the account lifecycle
// service depends on.
type LifecycleStore interface {
	UserReader
	AccountStore
}

// LedgerStore defines the slice of the data layer the transaction processor
// depends on: user and account resolution plus ledger reads and writes.
type LedgerStore interface {
	UserReader
	AccountReader
	TransactionStore
}
