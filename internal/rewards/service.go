package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
)

// SignUpFilter optionally narrows a staff sign-up count to a year, or to a
// month within a year. A zero filter counts everything.
type SignUpFilter struct {
	Year  int
	Month time.Month
}

// Service defines the rewards lookups: customer points balances and staff
// enrollment credits.
type Service interface {
	CustomerPoints(ctx context.Context, customerID int64) (int, error)
	StaffSignUpCount(ctx context.Context, staffID int64, filter SignUpFilter) (int64, error)
}

type service struct {
	repo Repository
}

// NewService wires a rewards service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("rewards repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CustomerPoints(ctx context.Context, customerID int64) (int, error) {
	if customerID <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	customer, err := s.repo.FindCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("customer %d not found", customerID))
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeConnectivity, err, "load customer points")
	}
	return customer.RewardPoints, nil
}

func (s *service) StaffSignUpCount(ctx context.Context, staffID int64, filter SignUpFilter) (int64, error) {
	if staffID <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "staff id required")
	}

	var from, to *time.Time
	switch {
	case filter.Year > 0 && filter.Month != 0:
		if filter.Month < time.January || filter.Month > time.December {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid month filter")
		}
		start := time.Date(filter.Year, filter.Month, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		from, to = &start, &end
	case filter.Year > 0:
		start := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		from, to = &start, &end
	case filter.Month != 0:
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "month filter requires a year")
	}

	count, err := s.repo.CountSignUps(ctx, staffID, from, to)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeConnectivity, err, "count sign-ups")
	}
	return count, nil
}
