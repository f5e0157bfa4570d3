package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const SalaryRangeMessage = "Maximum salary must be greater than or equal to minimum salary"

// SalaryRange is implemented by every shape that carries a salary range.
type SalaryRange interface {
	SalaryBounds() (min, max *decimal.Decimal)
}

// ValidSalaryRange reports whether max >= min. A missing bound is always valid.
func ValidSalaryRange(r SalaryRange) bool {
	min, max := r.SalaryBounds()
	if min == nil || max == nil {
		return true
	}
	return max.GreaterThanOrEqual(*min)
}

// Bounds adapts two loose values to SalaryRange.
type Bounds struct {
	Min, Max *decimal.Decimal
}

func (b Bounds) SalaryBounds() (min, max *decimal.Decimal) {
	return b.Min, b.Max
}

// salaryRangeStructLevel fails closed: a registered type that cannot report
// its bounds is rejected.
func salaryRangeStructLevel(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(SalaryRange)
	if !ok || !ValidSalaryRange(r) {
		sl.ReportError(nil, "salaryMax", "SalaryMax", "salaryrange", "")
	}
}
