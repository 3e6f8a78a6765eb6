package types

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// PackageAmount is an annual salary package in lakhs per annum, persisted
// as NUMERIC so aggregation stays exact.
type PackageAmount struct {
	decimal.Decimal
}

// NewPackageAmount builds a PackageAmount from a string such as "6.5".
func NewPackageAmount(value string) (PackageAmount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return PackageAmount{}, fmt.Errorf("package amount: %w", err)
	}
	if d.IsNegative() {
		return PackageAmount{}, fmt.Errorf("package amount: %s is negative", value)
	}
	return PackageAmount{Decimal: d}, nil
}

// Value stores the amount as a plain numeric string.
func (p PackageAmount) Value() (driver.Value, error) {
	return p.Decimal.String(), nil
}

// Scan decodes NUMERIC output from the driver.
func (p *PackageAmount) Scan(value interface{}) error {
	if value == nil {
		p.Decimal = decimal.Zero
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case float64:
		p.Decimal = decimal.NewFromFloat(v)
		return nil
	case int64:
		p.Decimal = decimal.NewFromInt(v)
		return nil
	default:
		return fmt.Errorf("package amount: unsupported scan type %T", value)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("package amount: %w", err)
	}
	p.Decimal = d
	return nil
}
