package rewards

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/pkg/db/models"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
)

type fakeRepository struct {
	findCustomerFn func(ctx context.Context, id int64) (*models.Customer, error)
	countFn        func(ctx context.Context, staffID int64, from, to *time.Time) (int64, error)
}

func (f *fakeRepository) FindCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	if f.findCustomerFn != nil {
		return f.findCustomerFn(ctx, id)
	}
	return &models.Customer{ID: id}, nil
}

func (f *fakeRepository) CountSignUps(ctx context.Context, staffID int64, from, to *time.Time) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx, staffID, from, to)
	}
	return 0, nil
}

func TestCustomerPoints(t *testing.T) {
	repo := &fakeRepository{
		findCustomerFn: func(ctx context.Context, id int64) (*models.Customer, error) {
			return &models.Customer{ID: id, RewardPoints: 120}, nil
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	points, err := svc.CustomerPoints(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 120, points)
}

func TestCustomerPointsNotFound(t *testing.T) {
	repo := &fakeRepository{
		findCustomerFn: func(ctx context.Context, id int64) (*models.Customer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.CustomerPoints(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound), "got %v", err)
}

func TestStaffSignUpCountUnfiltered(t *testing.T) {
	repo := &fakeRepository{
		countFn: func(ctx context.Context, staffID int64, from, to *time.Time) (int64, error) {
			assert.Nil(t, from)
			assert.Nil(t, to)
			return 5, nil
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	count, err := svc.StaffSignUpCount(context.Background(), 3, SignUpFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestStaffSignUpCountMonthFilter(t *testing.T) {
	var gotFrom, gotTo *time.Time
	repo := &fakeRepository{
		countFn: func(ctx context.Context, staffID int64, from, to *time.Time) (int64, error) {
			gotFrom, gotTo = from, to
			return 2, nil
		},
	}
	svc, err := NewService(repo)
	require.NoError(t, err)

	count, err := svc.StaffSignUpCount(context.Background(), 3, SignUpFilter{Year: 2021, Month: time.October})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.NotNil(t, gotFrom)
	require.NotNil(t, gotTo)
	assert.True(t, gotFrom.Equal(time.Date(2021, time.October, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, gotTo.Equal(time.Date(2021, time.November, 1, 0, 0, 0, 0, time.UTC)))
}

func TestStaffSignUpCountMonthWithoutYearRejected(t *testing.T) {
	svc, err := NewService(&fakeRepository{})
	require.NoError(t, err)

	_, err = svc.StaffSignUpCount(context.Background(), 3, SignUpFilter{Month: time.October})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation), "got %v", err)
}
