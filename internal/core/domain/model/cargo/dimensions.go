package cargo

import (
	"errors"
	"fmt"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when validating a zero-value Dimensions.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is the immutable physical description of a container shell.
//
// Units:
//   - maxCapacity: nominal cargo mass limit in kilograms
//   - weight: mass of the empty shell in kilograms
//   - height, depth: centimetres
//
// Example:
//
//	dims, err := cargo.NewDimensions(10000, 2200, 259, 606)
//	if err != nil {
//	    return err
//	}
type Dimensions struct {
	maxCapacity float64
	weight      float64
	height      float64
	depth       float64

	guard guard.ConstructorGuard
}

// NewDimensions validates and builds a Dimensions value. Every measure must be
// strictly positive; all violations are reported together.
func NewDimensions(maxCapacity, weight, height, depth float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setPositive(&d.maxCapacity, "maxCapacity", maxCapacity),
		setPositive(&d.weight, "weight", weight),
		setPositive(&d.height, "height", height),
		setPositive(&d.depth, "depth", depth),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// MaxCapacity returns the nominal cargo limit in kilograms.
func (d Dimensions) MaxCapacity() float64 {
	return d.maxCapacity
}

// Weight returns the shell mass in kilograms.
func (d Dimensions) Weight() float64 {
	return d.weight
}

// Height returns the height in centimetres.
func (d Dimensions) Height() float64 {
	return d.height
}

// Depth returns the depth in centimetres.
func (d Dimensions) Depth() float64 {
	return d.depth
}

// Validate returns ErrDimensionsAreNotConstructed for the zero value.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func setPositive(field *float64, name string, value float64) error {
	if !(value > 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid",
			fmt.Errorf("%s is not greater than 0", errs.FormatQuantity(value)),
		)
	}
	*field = value
	return nil
}
