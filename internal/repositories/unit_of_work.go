package repositories

import (
	"gorm.io/gorm"
)

// RepositoryProvider hands out repositories that all share one storage scope.
// Inside a UnitOfWork transaction every repository obtained from the provider
// reads and writes through the same transaction handle.
type RepositoryProvider interface {
	Users() UserRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Carts() CartRepository
	Orders() OrderRepository
	ResetTokens() PasswordResetTokenRepository
}

// UnitOfWork runs a workflow inside one atomic transaction. The function
// receives repositories bound to the transaction; returning an error rolls
// everything back, returning nil commits.
type UnitOfWork interface {
	Do(fn func(repos RepositoryProvider) error) error
}

// GormProvider is a RepositoryProvider over a single gorm handle, which may
// be the root connection or an open transaction.
type GormProvider struct {
	db *gorm.DB
}

// NewGormProvider creates a provider bound to the given handle.
func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

func (p *GormProvider) Users() UserRepository {
	return NewGormUserRepository(p.db)
}

func (p *GormProvider) Products() ProductRepository {
	return NewGormProductRepository(p.db)
}

func (p *GormProvider) Categories() CategoryRepository {
	return NewGormCategoryRepository(p.db)
}

func (p *GormProvider) Carts() CartRepository {
	return NewGormCartRepository(p.db)
}

func (p *GormProvider) Orders() OrderRepository {
	return NewGormOrderRepository(p.db)
}

func (p *GormProvider) ResetTokens() PasswordResetTokenRepository {
	return NewGormResetTokenRepository(p.db)
}

// GormUnitOfWork implements UnitOfWork over gorm transactions.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a unit of work over the given database.
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Do begins a transaction, runs fn with repositories bound to it, and commits
// on nil or rolls back on error (or panic, which gorm recovers and re-raises
// after rollback).
func (u *GormUnitOfWork) Do(fn func(repos RepositoryProvider) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormProvider(tx))
	})
}
