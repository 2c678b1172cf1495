package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/muskieco/retail-backend/pkg/db/models"
	"github.com/muskieco/retail-backend/pkg/enums"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
)

// SalesQuery selects the aggregation window for a sales summary. Date is
// read for day periods; Year and Month for month periods; Year alone for
// year periods.
type SalesQuery struct {
	StoreID int64
	Period  enums.ReportPeriod
	Date    time.Time
	Year    int
	Month   time.Month
}

// SalesSummary is the aggregate over the transactions matching a query.
// An empty window is a zero-value summary, not an error.
type SalesSummary struct {
	Count int64
	Total decimal.Decimal
}

// Service defines the read-only reporting surface.
type Service interface {
	SalesSummary(ctx context.Context, query SalesQuery) (*SalesSummary, error)
	StockReport(ctx context.Context, storeID int64) ([]models.Product, error)
}

type service struct {
	repo Repository
}

// NewService wires a reports service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	return &service{repo: repo}, nil
}

// window resolves the query into a half-open [from, to) range in UTC.
func (q SalesQuery) window() (time.Time, time.Time, error) {
	switch q.Period {
	case enums.ReportPeriodDay:
		if q.Date.IsZero() {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "date required for daily summary")
		}
		from := time.Date(q.Date.Year(), q.Date.Month(), q.Date.Day(), 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 0, 1), nil
	case enums.ReportPeriodMonth:
		if q.Year <= 0 || q.Month < time.January || q.Month > time.December {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "year and month required for monthly summary")
		}
		from := time.Date(q.Year, q.Month, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0), nil
	case enums.ReportPeriodYear:
		if q.Year <= 0 {
			return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "year required for yearly summary")
		}
		from := time.Date(q.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid report period %q", q.Period))
	}
}

func (s *service) SalesSummary(ctx context.Context, query SalesQuery) (*SalesSummary, error) {
	if query.StoreID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	from, to, err := query.window()
	if err != nil {
		return nil, err
	}

	count, total, err := s.repo.SalesBetween(ctx, query.StoreID, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConnectivity, err, "sales summary")
	}
	return &SalesSummary{Count: count, Total: total}, nil
}

func (s *service) StockReport(ctx context.Context, storeID int64) ([]models.Product, error) {
	if storeID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store id required")
	}
	listing, err := s.repo.ProductStock(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConnectivity, err, "stock report")
	}
	return listing, nil
}
