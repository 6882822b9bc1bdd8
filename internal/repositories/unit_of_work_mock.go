package repositories

// MockRepositoryProvider bundles the in-memory repositories for service tests.
type MockRepositoryProvider struct {
	UserRepo     *MockUserRepository
	ProductRepo  *MockProductRepository
	CategoryRepo *MockCategoryRepository
	CartRepo     *MockCartRepository
	OrderRepo    *MockOrderRepository
	TokenRepo    *MockResetTokenRepository
}

// NewMockRepositoryProvider creates a provider with fresh in-memory
// repositories.
func NewMockRepositoryProvider() *MockRepositoryProvider {
	return &MockRepositoryProvider{
		UserRepo:     NewMockUserRepository(),
		ProductRepo:  NewMockProductRepository(),
		CategoryRepo: NewMockCategoryRepository(),
		CartRepo:     NewMockCartRepository(),
		OrderRepo:    NewMockOrderRepository(),
		TokenRepo:    NewMockResetTokenRepository(),
	}
}

func (p *MockRepositoryProvider) Users() UserRepository { return p.UserRepo }
func (p *MockRepositoryProvider) Products() ProductRepository { return p.ProductRepo }
func (p *MockRepositoryProvider) Categories() CategoryRepository { return p.CategoryRepo }
func (p *MockRepositoryProvider) Carts() CartRepository { return p.CartRepo }
func (p *MockRepositoryProvider) Orders() OrderRepository { return p.OrderRepo }
func (p *MockRepositoryProvider) ResetTokens() PasswordResetTokenRepository { return p.TokenRepo }

// MockUnitOfWork implements UnitOfWork over the in-memory repositories.
// Before running fn it snapshots the mutable stores and restores them when fn
// errors, imitating a rollback.
type MockUnitOfWork struct {
	Provider *MockRepositoryProvider
}

// NewMockUnitOfWork creates a unit of work over the given provider.
func NewMockUnitOfWork(provider *MockRepositoryProvider) *MockUnitOfWork {
	return &MockUnitOfWork{Provider: provider}
}

// Do runs fn against the in-memory repositories, undoing product and cart
// writes if fn fails.
func (u *MockUnitOfWork) Do(fn func(repos RepositoryProvider) error) error {
	productSnapshot := u.Provider.ProductRepo.Snapshot()
	cartSnapshot := u.Provider.CartRepo.Snapshot()

	if err := fn(u.Provider); err != nil {
		u.Provider.ProductRepo.Restore(productSnapshot)
		u.Provider.CartRepo.Restore(cartSnapshot)
		return err
	}
	return nil
}
