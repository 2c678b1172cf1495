package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muskieco/retail-backend/internal/customers"
	"github.com/muskieco/retail-backend/internal/discounts"
	"github.com/muskieco/retail-backend/internal/ledger"
	"github.com/muskieco/retail-backend/internal/products"
	"github.com/muskieco/retail-backend/internal/reports"
	"github.com/muskieco/retail-backend/internal/rewards"
	"github.com/muskieco/retail-backend/internal/staff"
	"github.com/muskieco/retail-backend/internal/stores"
	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
	"github.com/muskieco/retail-backend/pkg/logger"
)

// Services bundles the domain services the console exposes.
type Services struct {
	Stores    stores.Service
	Products  products.Service
	Customers customers.Service
	Staff     staff.Service
	Discounts discounts.Service
	Ledger    ledger.Service
	Reports   reports.Service
	Rewards   rewards.Service
}

func (s Services) validate() error {
	if s.Stores == nil || s.Products == nil || s.Customers == nil ||
		s.Staff == nil || s.Discounts == nil || s.Ledger == nil ||
		s.Reports == nil || s.Rewards == nil {
		return fmt.Errorf("console requires all domain services")
	}
	return nil
}

// Console drives the interactive menu loop over the domain services.
type Console struct {
	services Services
	log      *logger.Logger
	prompt   *prompter
	out      io.Writer
}

// New wires a console over the provided services and streams.
func New(services Services, log *logger.Logger, in io.Reader, out io.Writer) (*Console, error) {
	if err := services.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if in == nil || out == nil {
		return nil, fmt.Errorf("input and output streams required")
	}
	return &Console{
		services: services,
		log:      log,
		prompt:   &prompter{in: bufio.NewReader(in), out: out},
		out:      out,
	}, nil
}

// Run loops the main menu until the operator exits or input closes. Service
// failures are printed and the menu redisplays; none of them end the
// session.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "--- MuskieCo Main Menu ---")
		fmt.Fprintln(c.out, "Which task would you like to perform?")
		fmt.Fprintln(c.out, "1. Information Processing")
		fmt.Fprintln(c.out, "2. Inventory Records")
		fmt.Fprintln(c.out, "3. Billing and Transaction Records")
		fmt.Fprintln(c.out, "4. Reports")
		fmt.Fprintln(c.out, "5. Rewards")
		fmt.Fprintln(c.out, "0. Exit")

		choice, err := c.prompt.line("Enter the number corresponding to your choice")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = c.informationMenu(ctx)
		case "2":
			err = c.inventoryMenu(ctx)
		case "3":
			err = c.billingMenu(ctx)
		case "4":
			err = c.reportsMenu(ctx)
		case "5":
			err = c.rewardsMenu(ctx)
		case "0":
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(c.out, "Unrecognized choice.")
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			c.renderError(ctx, err)
		}
	}
}

// renderError prints a typed failure and logs it; the caller returns to the
// menu afterwards.
func (c *Console) renderError(ctx context.Context, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		c.log.Error(ctx, "console operation failed", err)
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	fmt.Fprintf(c.out, "Error [%s]: %s\n", typed.Code(), typed.Message())
	if meta.DetailsAllowed && typed.Details() != nil {
		fmt.Fprintf(c.out, "Details: %v\n", typed.Details())
	}
	if meta.Retryable {
		fmt.Fprintln(c.out, "You can adjust the input and try again.")
	}
	c.log.Warn(ctx, "console operation rejected")
}
