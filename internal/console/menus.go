package console

import (
	"context"
	"fmt"
	"time"

	"github.com/muskieco/retail-backend/internal/customers"
	"github.com/muskieco/retail-backend/internal/discounts"
	"github.com/muskieco/retail-backend/internal/ledger"
	"github.com/muskieco/retail-backend/internal/products"
	"github.com/muskieco/retail-backend/internal/reports"
	"github.com/muskieco/retail-backend/internal/rewards"
	"github.com/muskieco/retail-backend/internal/staff"
	"github.com/muskieco/retail-backend/internal/stores"
	"github.com/muskieco/retail-backend/pkg/db/models"
	"github.com/muskieco/retail-backend/pkg/enums"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
)

func (c *Console) informationMenu(ctx context.Context) error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Information Processing ---")
	fmt.Fprintln(c.out, "1. Add Store")
	fmt.Fprintln(c.out, "2. Update Store")
	fmt.Fprintln(c.out, "3. Delete Store")
	fmt.Fprintln(c.out, "4. Search Store")
	fmt.Fprintln(c.out, "5. Add Customer")
	fmt.Fprintln(c.out, "6. Update Customer")
	fmt.Fprintln(c.out, "7. Delete Customer")
	fmt.Fprintln(c.out, "8. Search Customer")
	fmt.Fprintln(c.out, "9. Add Staff")
	fmt.Fprintln(c.out, "10. Update Staff")
	fmt.Fprintln(c.out, "11. Delete Staff")
	fmt.Fprintln(c.out, "12. Search Staff")

	choice, err := c.prompt.line("Enter choice")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return c.addStore(ctx)
	case "2":
		return c.updateStore(ctx)
	case "3":
		return c.deleteStore(ctx)
	case "4":
		return c.searchStore(ctx)
	case "5":
		return c.addCustomer(ctx)
	case "6":
		return c.updateCustomer(ctx)
	case "7":
		return c.deleteCustomer(ctx)
	case "8":
		return c.searchCustomer(ctx)
	case "9":
		return c.addStaff(ctx)
	case "10":
		return c.updateStaff(ctx)
	case "11":
		return c.deleteStaff(ctx)
	case "12":
		return c.searchStaff(ctx)
	default:
		fmt.Fprintln(c.out, "Unrecognized choice.")
		return nil
	}
}

func (c *Console) addStore(ctx context.Context) error {
	address, err := c.prompt.str("Store Address")
	if err != nil {
		return err
	}
	phone, err := c.prompt.str("Phone Number")
	if err != nil {
		return err
	}
	managerID, err := c.prompt.optionalID("Manager Staff ID (blank for none)")
	if err != nil {
		return err
	}
	store, err := c.services.Stores.CreateStore(ctx, stores.CreateStoreInput{
		Address:     address,
		PhoneNumber: phone,
		ManagerID:   managerID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created store %d.\n", store.ID)
	return nil
}

func (c *Console) updateStore(ctx context.Context) error {
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	address, err := c.prompt.str("New Store Address")
	if err != nil {
		return err
	}
	phone, err := c.prompt.str("New Phone Number")
	if err != nil {
		return err
	}
	managerID, err := c.prompt.optionalID("Manager Staff ID (blank for none)")
	if err != nil {
		return err
	}
	if _, err := c.services.Stores.UpdateStore(ctx, storeID, stores.UpdateStoreInput{
		Address:     address,
		PhoneNumber: phone,
		ManagerID:   managerID,
	}); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Updated store %d.\n", storeID)
	return nil
}

func (c *Console) deleteStore(ctx context.Context) error {
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	if err := c.services.Stores.DeleteStore(ctx, storeID); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted store %d.\n", storeID)
	return nil
}

func (c *Console) searchStore(ctx context.Context) error {
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	store, err := c.services.Stores.GetStore(ctx, storeID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Store %d: %s (phone %s)\n", store.ID, store.Address, store.PhoneNumber)
	if store.ManagerID != nil {
		fmt.Fprintf(c.out, "Managed by staff %d.\n", *store.ManagerID)
	}
	return nil
}

func (c *Console) customerInput() (customers.CreateCustomerInput, error) {
	var input customers.CreateCustomerInput
	var err error
	if input.FirstName, err = c.prompt.str("First Name"); err != nil {
		return input, err
	}
	if input.LastName, err = c.prompt.str("Last Name"); err != nil {
		return input, err
	}
	if input.Email, err = c.prompt.str("Email"); err != nil {
		return input, err
	}
	if input.PhoneNumber, err = c.prompt.str("Phone Number"); err != nil {
		return input, err
	}
	if input.HomeAddress, err = c.prompt.str("Home Address"); err != nil {
		return input, err
	}
	input.IsActive = true
	return input, nil
}

func (c *Console) addCustomer(ctx context.Context) error {
	input, err := c.customerInput()
	if err != nil {
		return err
	}
	if input.SignUpDate, err = c.prompt.dateVal("Sign-Up Date"); err != nil {
		return err
	}
	if input.SignUpStaffID, err = c.prompt.optionalID("Enrolling Staff ID (blank for none)"); err != nil {
		return err
	}
	if input.SignUpStaffID != nil {
		if input.SignUpStoreID, err = c.prompt.optionalID("Enrolling Store ID"); err != nil {
			return err
		}
	}
	customer, err := c.services.Customers.CreateCustomer(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created customer %d.\n", customer.ID)
	return nil
}

func (c *Console) updateCustomer(ctx context.Context) error {
	customerID, err := c.prompt.id("Customer ID")
	if err != nil {
		return err
	}
	base, err := c.customerInput()
	if err != nil {
		return err
	}
	active, err := c.prompt.yesNo("Active")
	if err != nil {
		return err
	}
	if _, err := c.services.Customers.UpdateCustomer(ctx, customerID, customers.UpdateCustomerInput{
		FirstName:   base.FirstName,
		LastName:    base.LastName,
		Email:       base.Email,
		PhoneNumber: base.PhoneNumber,
		HomeAddress: base.HomeAddress,
		IsActive:    active,
	}); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Updated customer %d.\n", customerID)
	return nil
}

func (c *Console) deleteCustomer(ctx context.Context) error {
	customerID, err := c.prompt.id("Customer ID")
	if err != nil {
		return err
	}
	if err := c.services.Customers.DeleteCustomer(ctx, customerID); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted customer %d.\n", customerID)
	return nil
}

func (c *Console) searchCustomer(ctx context.Context) error {
	customerID, err := c.prompt.id("Customer ID")
	if err != nil {
		return err
	}
	customer, err := c.services.Customers.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	status := "inactive"
	if customer.IsActive {
		status = "active"
	}
	fmt.Fprintf(c.out, "Customer %d: %s %s <%s>, %s, member since %s, %d points\n",
		customer.ID, customer.FirstName, customer.LastName, customer.Email,
		status, customer.SignUpDate.Format(dateLayout), customer.RewardPoints)
	return nil
}

func (c *Console) staffInput() (staff.StaffInput, error) {
	var input staff.StaffInput
	var err error
	if input.StoreID, err = c.prompt.id("Store ID"); err != nil {
		return input, err
	}
	if input.Name, err = c.prompt.str("Name"); err != nil {
		return input, err
	}
	if input.Age, err = c.prompt.intVal("Age"); err != nil {
		return input, err
	}
	if input.HomeAddress, err = c.prompt.str("Home Address"); err != nil {
		return input, err
	}
	if input.PhoneNumber, err = c.prompt.str("Phone Number"); err != nil {
		return input, err
	}
	if input.Email, err = c.prompt.str("Email"); err != nil {
		return input, err
	}
	if input.StartDate, err = c.prompt.dateVal("Start Date"); err != nil {
		return input, err
	}
	return input, nil
}

func (c *Console) addStaff(ctx context.Context) error {
	input, err := c.staffInput()
	if err != nil {
		return err
	}
	member, err := c.services.Staff.CreateStaff(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created staff %d.\n", member.ID)
	return nil
}

func (c *Console) updateStaff(ctx context.Context) error {
	staffID, err := c.prompt.id("Staff ID")
	if err != nil {
		return err
	}
	input, err := c.staffInput()
	if err != nil {
		return err
	}
	if _, err := c.services.Staff.UpdateStaff(ctx, staffID, input); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Updated staff %d.\n", staffID)
	return nil
}

func (c *Console) deleteStaff(ctx context.Context) error {
	staffID, err := c.prompt.id("Staff ID")
	if err != nil {
		return err
	}
	if err := c.services.Staff.DeleteStaff(ctx, staffID); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted staff %d.\n", staffID)
	return nil
}

func (c *Console) searchStaff(ctx context.Context) error {
	staffID, err := c.prompt.id("Staff ID")
	if err != nil {
		return err
	}
	member, err := c.services.Staff.GetStaff(ctx, staffID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Staff %d: %s, store %d, started %s\n",
		member.ID, member.Name, member.StoreID, member.StartDate.Format(dateLayout))
	return nil
}

func (c *Console) inventoryMenu(ctx context.Context) error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Inventory Records ---")
	fmt.Fprintln(c.out, "1. Add Product")
	fmt.Fprintln(c.out, "2. Update Product")
	fmt.Fprintln(c.out, "3. Delete Product")
	fmt.Fprintln(c.out, "4. Search Product")
	fmt.Fprintln(c.out, "5. List Products by Store")
	fmt.Fprintln(c.out, "6. Add Discount")
	fmt.Fprintln(c.out, "7. Update Discount")
	fmt.Fprintln(c.out, "8. Remove Discount")
	fmt.Fprintln(c.out, "9. Search Discount")
	fmt.Fprintln(c.out, "10. List Discounts by Store")

	choice, err := c.prompt.line("Enter choice")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return c.addProduct(ctx)
	case "2":
		return c.updateProduct(ctx)
	case "3":
		return c.deleteProduct(ctx)
	case "4":
		return c.searchProduct(ctx)
	case "5":
		return c.listProducts(ctx)
	case "6":
		return c.addDiscount(ctx)
	case "7":
		return c.updateDiscount(ctx)
	case "8":
		return c.removeDiscount(ctx)
	case "9":
		return c.searchDiscount(ctx)
	case "10":
		return c.listDiscounts(ctx)
	default:
		fmt.Fprintln(c.out, "Unrecognized choice.")
		return nil
	}
}

func (c *Console) productInput() (products.ProductInput, error) {
	var input products.ProductInput
	var err error
	if input.Name, err = c.prompt.str("Product Name"); err != nil {
		return input, err
	}
	if input.QuantityInStock, err = c.prompt.intVal("Quantity In Stock"); err != nil {
		return input, err
	}
	if input.BuyPrice, err = c.prompt.decimalVal("Buy Price"); err != nil {
		return input, err
	}
	if input.SellPrice, err = c.prompt.decimalVal("Sell Price"); err != nil {
		return input, err
	}
	if input.StoreID, err = c.prompt.id("Store ID"); err != nil {
		return input, err
	}
	return input, nil
}

func (c *Console) addProduct(ctx context.Context) error {
	input, err := c.productInput()
	if err != nil {
		return err
	}
	product, err := c.services.Products.CreateProduct(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created product %d.\n", product.ID)
	return nil
}

func (c *Console) updateProduct(ctx context.Context) error {
	productID, err := c.prompt.id("Product ID")
	if err != nil {
		return err
	}
	input, err := c.productInput()
	if err != nil {
		return err
	}
	if _, err := c.services.Products.UpdateProduct(ctx, productID, input); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Updated product %d.\n", productID)
	return nil
}

func (c *Console) deleteProduct(ctx context.Context) error {
	productID, err := c.prompt.id("Product ID")
	if err != nil {
		return err
	}
	if err := c.services.Products.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted product %d.\n", productID)
	return nil
}

func (c *Console) searchProduct(ctx context.Context) error {
	productID, err := c.prompt.id("Product ID")
	if err != nil {
		return err
	}
	product, err := c.services.Products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	c.printProduct(*product)
	return nil
}

func (c *Console) listProducts(ctx context.Context) error {
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	listing, err := c.services.Products.ListProductsByStore(ctx, storeID)
	if err != nil {
		return err
	}
	if len(listing) == 0 {
		fmt.Fprintln(c.out, "No products recorded for this store.")
		return nil
	}
	for _, product := range listing {
		c.printProduct(product)
	}
	return nil
}

func (c *Console) printProduct(product models.Product) {
	fmt.Fprintf(c.out, "Product %d: %s, %d in stock, sells at %s (store %d)\n",
		product.ID, product.Name, product.QuantityInStock,
		product.SellPrice.StringFixed(2), product.StoreID)
}

func (c *Console) addDiscount(ctx context.Context) error {
	productID, err := c.prompt.id("Product ID")
	if err != nil {
		return err
	}
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	discount, err := c.services.Discounts.CreateDiscount(ctx, discounts.DiscountInput{
		ProductID: productID,
		StoreID:   storeID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created discount %d.\n", discount.ID)
	return nil
}

func (c *Console) updateDiscount(ctx context.Context) error {
	discountID, err := c.prompt.id("Discount ID")
	if err != nil {
		return err
	}
	productID, err := c.prompt.id("New Product ID")
	if err != nil {
		return err
	}
	storeID, err := c.prompt.id("New Store ID")
	if err != nil {
		return err
	}
	if _, err := c.services.Discounts.UpdateDiscount(ctx, discountID, discounts.DiscountInput{
		ProductID: productID,
		StoreID:   storeID,
	}); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Updated discount %d.\n", discountID)
	return nil
}

func (c *Console) searchDiscount(ctx context.Context) error {
	discountID, err := c.prompt.id("Discount ID")
	if err != nil {
		return err
	}
	discount, err := c.services.Discounts.GetDiscount(ctx, discountID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Discount %d: product %d at store %d\n",
		discount.ID, discount.ProductID, discount.StoreID)
	return nil
}

func (c *Console) removeDiscount(ctx context.Context) error {
	discountID, err := c.prompt.id("Discount ID")
	if err != nil {
		return err
	}
	if err := c.services.Discounts.DeleteDiscount(ctx, discountID); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Removed discount %d.\n", discountID)
	return nil
}

func (c *Console) listDiscounts(ctx context.Context) error {
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	listing, err := c.services.Discounts.ListDiscountsByStore(ctx, storeID)
	if err != nil {
		return err
	}
	if len(listing) == 0 {
		fmt.Fprintln(c.out, "No discounts recorded for this store.")
		return nil
	}
	for _, discount := range listing {
		fmt.Fprintf(c.out, "Discount %d: product %d at store %d\n",
			discount.ID, discount.ProductID, discount.StoreID)
	}
	return nil
}

func (c *Console) billingMenu(ctx context.Context) error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Billing and Transaction Records ---")
	fmt.Fprintln(c.out, "1. Add Transaction")
	fmt.Fprintln(c.out, "2. Add Products to Transaction")
	fmt.Fprintln(c.out, "3. Calculate Transaction Total")
	fmt.Fprintln(c.out, "4. Show Transaction")

	choice, err := c.prompt.line("Enter choice")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return c.addTransaction(ctx)
	case "2":
		return c.addTransactionItems(ctx)
	case "3":
		return c.computeTransactionTotal(ctx)
	case "4":
		return c.showTransaction(ctx)
	default:
		fmt.Fprintln(c.out, "Unrecognized choice.")
		return nil
	}
}

func (c *Console) addTransaction(ctx context.Context) error {
	var input ledger.CreateTransactionInput
	var err error
	if input.StoreID, err = c.prompt.id("Store ID"); err != nil {
		return err
	}
	if input.CustomerID, err = c.prompt.id("Customer ID"); err != nil {
		return err
	}
	if input.CashierID, err = c.prompt.id("Cashier Staff ID"); err != nil {
		return err
	}
	if input.PurchaseDate, err = c.prompt.dateVal("Purchase Date"); err != nil {
		return err
	}
	if input.TotalPrice, err = c.prompt.optionalDecimal("Total Estimate (blank for 0)"); err != nil {
		return err
	}
	rawType, err := c.prompt.str("Type (Buy or Return)")
	if err != nil {
		return err
	}
	parsedType, err := enums.ParseTransactionType(rawType)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}
	input.Type = parsedType

	txn, err := c.services.Ledger.CreateTransaction(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created transaction %d, receipt %s.\n", txn.ID, txn.ReceiptNumber)
	return nil
}

func (c *Console) addTransactionItems(ctx context.Context) error {
	transactionID, err := c.prompt.id("Transaction ID")
	if err != nil {
		return err
	}
	count, err := c.prompt.intVal("Number of line items")
	if err != nil {
		return err
	}
	if count <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "number of line items must be positive")
	}
	items := make([]ledger.ItemInput, 0, count)
	for i := 0; i < count; i++ {
		fmt.Fprintf(c.out, "Line %d:\n", i+1)
		var item ledger.ItemInput
		if item.ProductID, err = c.prompt.id("Product ID"); err != nil {
			return err
		}
		if item.Quantity, err = c.prompt.intVal("Quantity"); err != nil {
			return err
		}
		if item.DiscountPercent, err = c.prompt.optionalDecimal("Discount Percent (blank for 0)"); err != nil {
			return err
		}
		items = append(items, item)
	}
	if err := c.services.Ledger.AddItems(ctx, transactionID, items); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Attached %d items to transaction %d.\n", len(items), transactionID)
	return nil
}

func (c *Console) computeTransactionTotal(ctx context.Context) error {
	transactionID, err := c.prompt.id("Transaction ID")
	if err != nil {
		return err
	}
	total, err := c.services.Ledger.ComputeTotal(ctx, transactionID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Transaction %d total: %s\n", transactionID, total.StringFixed(2))
	return nil
}

func (c *Console) showTransaction(ctx context.Context) error {
	transactionID, err := c.prompt.id("Transaction ID")
	if err != nil {
		return err
	}
	txn, items, err := c.services.Ledger.GetTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Transaction %d (%s) on %s, receipt %s, total %s\n",
		txn.ID, txn.Type, txn.PurchaseDate.Format(dateLayout),
		txn.ReceiptNumber, txn.TotalPrice.StringFixed(2))
	for _, item := range items {
		fmt.Fprintf(c.out, "  product %d x%d, discount %s%%\n",
			item.ProductID, item.Quantity, item.DiscountPercent.StringFixed(2))
	}
	return nil
}

func (c *Console) reportsMenu(ctx context.Context) error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Reports ---")
	fmt.Fprintln(c.out, "1. Daily Sales Report")
	fmt.Fprintln(c.out, "2. Monthly Sales Report")
	fmt.Fprintln(c.out, "3. Annual Sales Report")
	fmt.Fprintln(c.out, "4. Product Stock Report")

	choice, err := c.prompt.line("Enter choice")
	if err != nil {
		return err
	}
	switch choice {
	case "1", "2", "3":
		return c.salesReport(ctx, choice)
	case "4":
		return c.stockReport(ctx)
	default:
		fmt.Fprintln(c.out, "Unrecognized choice.")
		return nil
	}
}

func (c *Console) salesReport(ctx context.Context, choice string) error {
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	query := reports.SalesQuery{StoreID: storeID}
	switch choice {
	case "1":
		query.Period = enums.ReportPeriodDay
		if query.Date, err = c.prompt.dateVal("Date"); err != nil {
			return err
		}
	case "2":
		query.Period = enums.ReportPeriodMonth
		if query.Year, err = c.prompt.intVal("Year"); err != nil {
			return err
		}
		month, err := c.prompt.intVal("Month (1-12)")
		if err != nil {
			return err
		}
		query.Month = time.Month(month)
	case "3":
		query.Period = enums.ReportPeriodYear
		if query.Year, err = c.prompt.intVal("Year"); err != nil {
			return err
		}
	}

	summary, err := c.services.Reports.SalesSummary(ctx, query)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%d transactions totaling %s\n", summary.Count, summary.Total.StringFixed(2))
	return nil
}

func (c *Console) stockReport(ctx context.Context) error {
	storeID, err := c.prompt.id("Store ID")
	if err != nil {
		return err
	}
	listing, err := c.services.Reports.StockReport(ctx, storeID)
	if err != nil {
		return err
	}
	if len(listing) == 0 {
		fmt.Fprintln(c.out, "No products recorded for this store.")
		return nil
	}
	for _, product := range listing {
		fmt.Fprintf(c.out, "Product %d: %s, %d in stock\n",
			product.ID, product.Name, product.QuantityInStock)
	}
	return nil
}

func (c *Console) rewardsMenu(ctx context.Context) error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "--- Rewards ---")
	fmt.Fprintln(c.out, "1. Customer Reward Points")
	fmt.Fprintln(c.out, "2. Staff Sign-Up Count")

	choice, err := c.prompt.line("Enter choice")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		customerID, err := c.prompt.id("Customer ID")
		if err != nil {
			return err
		}
		points, err := c.services.Rewards.CustomerPoints(ctx, customerID)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Customer %d has %d reward points.\n", customerID, points)
		return nil
	case "2":
		staffID, err := c.prompt.id("Staff ID")
		if err != nil {
			return err
		}
		var filter rewards.SignUpFilter
		year, err := c.prompt.optionalID("Year (blank for all time)")
		if err != nil {
			return err
		}
		if year != nil {
			filter.Year = int(*year)
			month, err := c.prompt.optionalID("Month 1-12 (blank for whole year)")
			if err != nil {
				return err
			}
			if month != nil {
				filter.Month = time.Month(*month)
			}
		}
		count, err := c.services.Rewards.StaffSignUpCount(ctx, staffID, filter)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Staff %d signed up %d customers.\n", staffID, count)
		return nil
	default:
		fmt.Fprintln(c.out, "Unrecognized choice.")
		return nil
	}
}
