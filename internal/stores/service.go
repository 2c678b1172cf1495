package stores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/db/models"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
	"github.com/muskieco/retail-backend/pkg/validate"
)

// CreateStoreInput carries the fields for a new retail location.
type CreateStoreInput struct {
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	ManagerID   *int64 `json:"manager_id" validate:"omitempty,gt=0"`
}

// UpdateStoreInput replaces the mutable fields of an existing store.
type UpdateStoreInput struct {
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	ManagerID   *int64 `json:"manager_id" validate:"omitempty,gt=0"`
}

// Service defines store-level CRUD operations.
type Service interface {
	CreateStore(ctx context.Context, input CreateStoreInput) (*models.Store, error)
	GetStore(ctx context.Context, storeID int64) (*models.Store, error)
	UpdateStore(ctx context.Context, storeID int64, input UpdateStoreInput) (*models.Store, error)
	DeleteStore(ctx context.Context, storeID int64) error
}

type service struct {
	repo Repository
}

// NewService wires a stores service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stores repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateStore(ctx context.Context, input CreateStoreInput) (*models.Store, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	store := &models.Store{
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
		ManagerID:   input.ManagerID,
	}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, mapStoreError(err, "create store")
	}
	return store, nil
}

func (s *service) GetStore(ctx context.Context, storeID int64) (*models.Store, error) {
	if storeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	store, err := s.repo.Find(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("store %d not found", storeID))
		}
		return nil, mapStoreError(err, "load store")
	}
	return store, nil
}

func (s *service) UpdateStore(ctx context.Context, storeID int64, input UpdateStoreInput) (*models.Store, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	store.Address = input.Address
	store.PhoneNumber = input.PhoneNumber
	store.ManagerID = input.ManagerID
	if err := s.repo.Update(ctx, store); err != nil {
		return nil, mapStoreError(err, "update store")
	}
	return store, nil
}

func (s *service) DeleteStore(ctx context.Context, storeID int64) error {
	if storeID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	affected, err := s.repo.Delete(ctx, storeID)
	if err != nil {
		return mapStoreError(err, "delete store")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("store %d not found", storeID))
	}
	return nil
}

func mapStoreError(err error, operation string) error {
	switch {
	case db.IsForeignKeyViolation(err):
		return pkgerrors.Wrap(pkgerrors.CodeReference, err, operation)
	case db.IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, operation)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeConnectivity, err, operation)
	}
}
