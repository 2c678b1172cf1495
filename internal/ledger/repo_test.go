package ledger

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
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
)

var ledgerDDL = []string{
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
	`CREATE TABLE IF NOT EXISTS transaction_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  transaction_id INTEGER NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id),
  quantity INTEGER NOT NULL,
  discount_percent NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME
);`,
}

func setupLedgerTestDB(t *testing.T) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString()),
		MaxOpenConns: 1,
	}
	client, err := db.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	for _, stmt := range ledgerDDL {
		require.NoError(t, client.DB().Exec(stmt).Error)
	}
	return client
}

func mustSeedStore(t *testing.T, conn *gorm.DB) *models.Store {
	t.Helper()
	store := &models.Store{ID: 1, Address: "100 Muskie Way", PhoneNumber: "555-0100"}
	require.NoError(t, conn.Create(store).Error)
	return store
}

func mustSeedStaff(t *testing.T, conn *gorm.DB, storeID int64) *models.Staff {
	t.Helper()
	staff := &models.Staff{
		ID:          3,
		StoreID:     storeID,
		Name:        "Casey Cashier",
		Age:         29,
		HomeAddress: "12 Elm St",
		PhoneNumber: "555-0103",
		Email:       "casey@muskieco.example",
		StartDate:   time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, conn.Create(staff).Error)
	return staff
}

func mustSeedCustomer(t *testing.T, conn *gorm.DB) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		ID:          7,
		FirstName:   "Morgan",
		LastName:    "Muskie",
		Email:       "morgan@example.com",
		PhoneNumber: "555-0107",
		HomeAddress: "9 Lake Rd",
		IsActive:    true,
		SignUpDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, conn.Create(customer).Error)
	return customer
}

func mustSeedProduct(t *testing.T, conn *gorm.DB, id int64, storeID int64, sellPrice string) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:              id,
		Name:            fmt.Sprintf("Product %d", id),
		QuantityInStock: 100,
		BuyPrice:        decimal.RequireFromString(sellPrice).Div(decimal.NewFromInt(2)).Round(2),
		SellPrice:       decimal.RequireFromString(sellPrice),
		StoreID:         storeID,
	}
	require.NoError(t, conn.Create(product).Error)
	return product
}

func seedLedgerFixtures(t *testing.T, client *db.Client) {
	t.Helper()
	conn := client.DB()
	store := mustSeedStore(t, conn)
	mustSeedStaff(t, conn, store.ID)
	mustSeedCustomer(t, conn)
	mustSeedProduct(t, conn, 42, store.ID, "5.00")
	mustSeedProduct(t, conn, 43, store.ID, "20.00")
}

func newLedgerService(t *testing.T, client *db.Client) Service {
	t.Helper()
	svc, err := NewService(NewRepository(client.DB()), client)
	require.NoError(t, err)
	return svc
}

func mustCreateHeader(t *testing.T, svc Service) *models.Transaction {
	t.Helper()
	txn, err := svc.CreateTransaction(context.Background(), CreateTransactionInput{
		StoreID:      1,
		CustomerID:   7,
		CashierID:    3,
		PurchaseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		TotalPrice:   decimal.Zero,
		Type:         enums.TransactionTypeBuy,
	})
	require.NoError(t, err)
	return txn
}

func countItems(t *testing.T, client *db.Client, transactionID int64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, client.DB().
		Model(&models.TransactionItem{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error)
	return count
}

func TestCreateTransactionRejectsUnknownReferences(t *testing.T) {
	client := setupLedgerTestDB(t)
	seedLedgerFixtures(t, client)
	svc := newLedgerService(t, client)

	_, err := svc.CreateTransaction(context.Background(), CreateTransactionInput{
		StoreID:      999,
		CustomerID:   7,
		CashierID:    3,
		PurchaseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Type:         enums.TransactionTypeBuy,
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeReference), "got %v", err)
}

func TestAddItemsRollsBackWholeBatch(t *testing.T) {
	client := setupLedgerTestDB(t)
	seedLedgerFixtures(t, client)
	svc := newLedgerService(t, client)
	txn := mustCreateHeader(t, svc)

	err := svc.AddItems(context.Background(), txn.ID, []ItemInput{
		{ProductID: 42, Quantity: 3},
		{ProductID: 4242, Quantity: 1}, // no such product
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodePartialWrite), "got %v", err)
	assert.Zero(t, countItems(t, client, txn.ID), "batch must roll back completely")
}

func TestAddItemsAndComputeTotalEndToEnd(t *testing.T) {
	client := setupLedgerTestDB(t)
	seedLedgerFixtures(t, client)
	svc := newLedgerService(t, client)
	txn := mustCreateHeader(t, svc)

	require.NoError(t, svc.AddItems(context.Background(), txn.ID, []ItemInput{
		{ProductID: 42, Quantity: 3},
		{ProductID: 43, Quantity: 1, DiscountPercent: decimal.NewFromInt(10)},
	}))
	assert.Equal(t, int64(2), countItems(t, client, txn.ID))

	total, err := svc.ComputeTotal(context.Background(), txn.ID)
	require.NoError(t, err)
	// 5.00*3 + 20.00*0.9 with the line discount applied.
	assert.True(t, total.Equal(decimal.NewFromFloat(33.00)), "got %s", total)

	header, items, err := svc.GetTransaction(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, header.TotalPrice.Equal(total), "header should carry recomputed total, got %s", header.TotalPrice)
}

func TestComputeTotalTracksPriceDrift(t *testing.T) {
	client := setupLedgerTestDB(t)
	seedLedgerFixtures(t, client)
	mustSeedProduct(t, client.DB(), 50, 1, "10.00")
	svc := newLedgerService(t, client)
	txn := mustCreateHeader(t, svc)

	require.NoError(t, svc.AddItems(context.Background(), txn.ID, []ItemInput{
		{ProductID: 50, Quantity: 2},
	}))

	total, err := svc.ComputeTotal(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(20.00)), "got %s", total)

	require.NoError(t, client.DB().
		Model(&models.Product{}).
		Where("id = ?", 50).
		Update("sell_price", decimal.NewFromFloat(15.00)).Error)

	drifted, err := svc.ComputeTotal(context.Background(), txn.ID)
	require.NoError(t, err)
	// No price snapshot is taken at sale time; totals follow the shelf price.
	assert.True(t, drifted.Equal(decimal.NewFromFloat(30.00)), "got %s", drifted)
}

func TestComputeTotalDistinguishesMissingFromEmpty(t *testing.T) {
	client := setupLedgerTestDB(t)
	seedLedgerFixtures(t, client)
	svc := newLedgerService(t, client)
	txn := mustCreateHeader(t, svc)

	total, err := svc.ComputeTotal(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "empty transaction totals to zero, got %s", total)

	_, err = svc.ComputeTotal(context.Background(), txn.ID+1000)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound), "got %v", err)
}
