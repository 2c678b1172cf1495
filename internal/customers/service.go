package customers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/db/models"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
	"github.com/muskieco/retail-backend/pkg/validate"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// CreateCustomerInput enrolls a new rewards-program member. When
// SignUpStaffID is set the enrolling staff member is credited for the
// sign-up in the same transaction.
type CreateCustomerInput struct {
	FirstName     string    `json:"first_name" validate:"required"`
	LastName      string    `json:"last_name" validate:"required"`
	Email         string    `json:"email" validate:"required,email"`
	PhoneNumber   string    `json:"phone_number" validate:"required"`
	HomeAddress   string    `json:"home_address" validate:"required"`
	IsActive      bool      `json:"is_active"`
	SignUpDate    time.Time `json:"sign_up_date" validate:"required"`
	SignUpStaffID *int64    `json:"sign_up_staff_id" validate:"omitempty,gt=0"`
	SignUpStoreID *int64    `json:"sign_up_store_id" validate:"omitempty,gt=0"`
}

// UpdateCustomerInput replaces the mutable customer fields.
type UpdateCustomerInput struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	HomeAddress string `json:"home_address" validate:"required"`
	IsActive    bool   `json:"is_active"`
}

// Service defines customer-level CRUD operations.
type Service interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, input UpdateCustomerInput) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService wires a customers service with the provided repository and
// transaction runner.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// CreateCustomer inserts the customer row and, when an enrolling staff
// member is named, the sign-up credit row in one transaction.
func (s *service) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	if input.SignUpStaffID != nil && input.SignUpStoreID == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sign-up store required when crediting staff")
	}

	customer := &models.Customer{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		HomeAddress: input.HomeAddress,
		IsActive:    input.IsActive,
		SignUpDate:  input.SignUpDate,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, customer); err != nil {
			return mapStoreError(err, "create customer")
		}
		if input.SignUpStaffID == nil {
			return nil
		}
		signUp := &models.CustomerSignUp{
			CustomerID:    customer.ID,
			SignUpStaffID: *input.SignUpStaffID,
			StoreID:       *input.SignUpStoreID,
			SignUpDate:    input.SignUpDate,
		}
		if err := repo.CreateSignUp(ctx, signUp); err != nil {
			return mapStoreError(err, "credit sign-up staff")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *service) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	if customerID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	customer, err := s.repo.Find(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("customer %d not found", customerID))
		}
		return nil, mapStoreError(err, "load customer")
	}
	return customer, nil
}

func (s *service) UpdateCustomer(ctx context.Context, customerID int64, input UpdateCustomerInput) (*models.Customer, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = input.Email
	customer.PhoneNumber = input.PhoneNumber
	customer.HomeAddress = input.HomeAddress
	customer.IsActive = input.IsActive
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, mapStoreError(err, "update customer")
	}
	return customer, nil
}

func (s *service) DeleteCustomer(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	affected, err := s.repo.Delete(ctx, customerID)
	if err != nil {
		return mapStoreError(err, "delete customer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("customer %d not found", customerID))
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
