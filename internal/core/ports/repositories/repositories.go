package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer.
type RepositoryProvider struct {
	UserRepo    UserRepository
	ProductRepo ProductRepository
	LedgerRepo  LedgerRepository
}
