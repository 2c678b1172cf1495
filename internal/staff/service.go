package staff

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

// StaffInput carries the full set of staff fields, used for both create and
// update.
type StaffInput struct {
	StoreID     int64     `json:"store_id" validate:"required,gt=0"`
	Name        string    `json:"name" validate:"required"`
	Age         int       `json:"age" validate:"required,gt=0"`
	HomeAddress string    `json:"home_address" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	StartDate   time.Time `json:"start_date" validate:"required"`
}

// Service defines staff-level CRUD operations.
type Service interface {
	CreateStaff(ctx context.Context, input StaffInput) (*models.Staff, error)
	GetStaff(ctx context.Context, staffID int64) (*models.Staff, error)
	ListStaffByStore(ctx context.Context, storeID int64) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, staffID int64, input StaffInput) (*models.Staff, error)
	DeleteStaff(ctx context.Context, staffID int64) error
}

type service struct {
	repo Repository
}

// NewService wires a staff service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("staff repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateStaff(ctx context.Context, input StaffInput) (*models.Staff, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	member := &models.Staff{
		StoreID:     input.StoreID,
		Name:        input.Name,
		Age:         input.Age,
		HomeAddress: input.HomeAddress,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		StartDate:   input.StartDate,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, mapStoreError(err, "create staff")
	}
	return member, nil
}

func (s *service) GetStaff(ctx context.Context, staffID int64) (*models.Staff, error) {
	if staffID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "staff id required")
	}
	member, err := s.repo.Find(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("staff %d not found", staffID))
		}
		return nil, mapStoreError(err, "load staff")
	}
	return member, nil
}

func (s *service) ListStaffByStore(ctx context.Context, storeID int64) ([]models.Staff, error) {
	if storeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	listing, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, mapStoreError(err, "list staff")
	}
	return listing, nil
}

func (s *service) UpdateStaff(ctx context.Context, staffID int64, input StaffInput) (*models.Staff, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	member, err := s.GetStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	member.StoreID = input.StoreID
	member.Name = input.Name
	member.Age = input.Age
	member.HomeAddress = input.HomeAddress
	member.PhoneNumber = input.PhoneNumber
	member.Email = input.Email
	member.StartDate = input.StartDate
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, mapStoreError(err, "update staff")
	}
	return member, nil
}

func (s *service) DeleteStaff(ctx context.Context, staffID int64) error {
	if staffID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "staff id required")
	}
	affected, err := s.repo.Delete(ctx, staffID)
	if err != nil {
		return mapStoreError(err, "delete staff")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("staff %d not found", staffID))
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
