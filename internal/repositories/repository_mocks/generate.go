package repository_mocks

// Mocks for the transaction store interfaces. Regenerate after changing
// ../interfaces.go with: go generate ./internal/repositories/repository_mocks
//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
