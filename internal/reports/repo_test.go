package reports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/muskieco/retail-backend/pkg/config"
	"github.com/muskieco/retail-backend/pkg/db"
	"github.com/muskieco/retail-backend/pkg/db/models"
	"github.com/muskieco/retail-backend/pkg/enums"
)

var reportsDDL = []string{
	`CREATE TABLE IF NOT EXISTS stores (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  address TEXT NOT NULL,
  phone_number TEXT NOT NULL,
  manager_id INTEGER,
  created_at DATETIME,
  updated_at DATETIME
);`,
	`CREATE TABLE IF NOT EXISTS staff (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  store_id INTEGER NOT NULL REFERENCES stores(id),
  name TEXT NOT NULL,
  age INTEGER NOT NULL,
  home_address TEXT NOT NULL,
  phone_number TEXT NOT NULL,
  email TEXT NOT NULL,
  start_date DATE NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
	`CREATE TABLE IF NOT EXISTS customers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone_number TEXT NOT NULL,
  home_address TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  sign_up_date DATE NOT NULL,
  reward_points INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`,
	`CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  quantity_in_stock INTEGER NOT NULL DEFAULT 0,
  buy_price NUMERIC NOT NULL,
  sell_price NUMERIC NOT NULL,
  store_id INTEGER NOT NULL REFERENCES stores(id),
  created_at DATETIME,
  updated_at DATETIME
);`,
	`CREATE TABLE IF NOT EXISTS transactions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  receipt_number TEXT NOT NULL,
  store_id INTEGER NOT NULL REFERENCES stores(id),
  customer_id INTEGER NOT NULL REFERENCES customers(id),
  cashier_id INTEGER NOT NULL REFERENCES staff(id),
  purchase_date DATE NOT NULL,
  total_price NUMERIC NOT NULL,
  type TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
}

func setupReportsTestDB(t *testing.T) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		MaxOpenConns: 1,
	}
	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	for _, stmt := range reportsDDL {
		require.NoError(t, client.DB().Exec(stmt).Error)
	}
	return client
}

func seedSalesFixture(t *testing.T, conn *gorm.DB) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Store{ID: 1, Address: "100 Muskie Way", PhoneNumber: "555-0100"}).Error)
	require.NoError(t, conn.Create(&models.Store{ID: 2, Address: "9 Harbor Rd", PhoneNumber: "555-0200"}).Error)
	require.NoError(t, conn.Create(&models.Staff{
		ID: 3, StoreID: 1, Name: "Sam Pike", Age: 29,
		HomeAddress: "12 Dockside Ln", PhoneNumber: "555-0103",
		Email: "sam@example.com", StartDate: date(2020, time.March, 2),
	}).Error)
	require.NoError(t, conn.Create(&models.Customer{
		ID: 7, FirstName: "Robin", LastName: "Muskie",
		Email: "robin@example.com", PhoneNumber: "555-0107",
		HomeAddress: "7 Lakeside Dr", IsActive: true,
		SignUpDate: date(2021, time.October, 10),
	}).Error)

	sales := []struct {
		storeID int64
		day     time.Time
		total   string
	}{
		{1, date(2021, time.October, 10), "33.00"},
		{1, date(2021, time.October, 10), "12.50"},
		{1, date(2021, time.October, 11), "5.00"},
		{1, date(2021, time.November, 1), "100.00"},
		{2, date(2021, time.October, 10), "999.00"},
	}
	for _, sale := range sales {
		require.NoError(t, conn.Create(&models.Transaction{
			ReceiptNumber: uuid.New(),
			StoreID:       sale.storeID,
			CustomerID:    7,
			CashierID:     3,
			PurchaseDate:  sale.day,
			TotalPrice:    decimal.RequireFromString(sale.total),
			Type:          enums.TransactionTypeBuy,
		}).Error)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSalesSummaryByDay(t *testing.T) {
	ctx := context.Background()
	client := setupReportsTestDB(t)
	seedSalesFixture(t, client.DB())

	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)

	summary, err := svc.SalesSummary(ctx, SalesQuery{
		StoreID: 1,
		Period:  enums.ReportPeriodDay,
		Date:    date(2021, time.October, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("45.50")), "got %s", summary.Total)
}

func TestSalesSummaryByMonthAndYear(t *testing.T) {
	ctx := context.Background()
	client := setupReportsTestDB(t)
	seedSalesFixture(t, client.DB())

	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)

	month, err := svc.SalesSummary(ctx, SalesQuery{
		StoreID: 1,
		Period:  enums.ReportPeriodMonth,
		Year:    2021,
		Month:   time.October,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), month.Count)
	assert.True(t, month.Total.Equal(decimal.RequireFromString("50.50")), "got %s", month.Total)

	year, err := svc.SalesSummary(ctx, SalesQuery{
		StoreID: 1,
		Period:  enums.ReportPeriodYear,
		Year:    2021,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), year.Count)
	assert.True(t, year.Total.Equal(decimal.RequireFromString("150.50")), "got %s", year.Total)
}

func TestSalesSummaryEmptyWindowIsZero(t *testing.T) {
	ctx := context.Background()
	client := setupReportsTestDB(t)
	seedSalesFixture(t, client.DB())

	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)

	summary, err := svc.SalesSummary(ctx, SalesQuery{
		StoreID: 1,
		Period:  enums.ReportPeriodDay,
		Date:    date(2022, time.January, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Count)
	assert.True(t, summary.Total.IsZero(), "got %s", summary.Total)
}

func TestStockReportListsStoreProducts(t *testing.T) {
	ctx := context.Background()
	client := setupReportsTestDB(t)
	seedSalesFixture(t, client.DB())
	require.NoError(t, client.DB().Create(&models.Product{
		ID: 42, Name: "Lake Trout Lure", QuantityInStock: 12,
		BuyPrice:  decimal.RequireFromString("3.50"),
		SellPrice: decimal.RequireFromString("7.99"),
		StoreID:   1,
	}).Error)

	svc, err := NewService(NewRepository(client.DB()))
	require.NoError(t, err)

	listing, err := svc.StockReport(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, 12, listing[0].QuantityInStock)

	empty, err := svc.StockReport(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
