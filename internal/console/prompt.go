package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/muskieco/retail-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// prompter reads typed values off the console, one labelled line at a time.
// Parse failures come back as validation errors so the menu loop can print
// them and re-prompt rather than abort.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	raw, err := p.in.ReadString('\n')
	if err != nil && raw == "" {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (p *prompter) str(label string) (string, error) {
	value, err := p.line(label)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s is required", label))
	}
	return value, nil
}

func (p *prompter) id(label string) (int64, error) {
	raw, err := p.str(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a positive number", label))
	}
	return value, nil
}

// optionalID returns nil when the line is left empty.
func (p *prompter) optionalID(label string) (*int64, error) {
	raw, err := p.line(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a positive number", label))
	}
	return &value, nil
}

func (p *prompter) intVal(label string) (int, error) {
	raw, err := p.str(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a whole number", label))
	}
	return value, nil
}

func (p *prompter) decimalVal(label string) (decimal.Decimal, error) {
	raw, err := p.str(label)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a decimal amount", label))
	}
	return value, nil
}

// optionalDecimal returns zero when the line is left empty.
func (p *prompter) optionalDecimal(label string) (decimal.Decimal, error) {
	raw, err := p.line(label)
	if err != nil {
		return decimal.Zero, err
	}
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a decimal amount", label))
	}
	return value, nil
}

func (p *prompter) dateVal(label string) (time.Time, error) {
	raw, err := p.str(fmt.Sprintf("%s (%s)", label, dateLayout))
	if err != nil {
		return time.Time{}, err
	}
	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must look like %s", label, dateLayout))
	}
	return value, nil
}

func (p *prompter) yesNo(label string) (bool, error) {
	raw, err := p.line(fmt.Sprintf("%s (y/n)", label))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(raw) {
	case "y", "yes":
		return true, nil
	case "n", "no", "":
		return false, nil
	default:
		return false, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be y or n", label))
	}
}
