// Package usecase implements the business logic for contract-related operations.
package usecase

import "context"

// ContractRepository abstracts the persistence layer for contract identifiers.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ContractRepository interface {
	ListContracts(ctx context.Context) ([]string, error)
}

// ContractUsecase provides business logic for contract operations.
type ContractUsecase struct {
	repo ContractRepository
}

// NewContractUsecase creates a new ContractUsecase with the given repository.
func NewContractUsecase(r ContractRepository) *ContractUsecase {
	return &ContractUsecase{repo: r}
}

// ListContracts returns the distinct contract identifiers present in the dataset.
func (u *ContractUsecase) ListContracts(ctx context.Context) ([]string, error) {
	return u.repo.ListContracts(ctx)
}
