package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"cargo/internal/pkg/errs"
)

const serialPrefix = "KON"

// ErrSerialNumberIsNotConstructed is returned when validating a zero-value SerialNumber.
var ErrSerialNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"SerialNumber must be created via SerialGenerator.Next or ParseSerialNumber",
)

// SerialNumber identifies a container for its whole lifetime. Its text form is
// KON-<code>-<n>, where code is the container kind letter and n the value of
// the process-wide counter at construction time.
//
// SerialNumber is comparable and can be used as a map key.
type SerialNumber struct {
	kind     Kind
	sequence uint64
}

// ParseSerialNumber reads the KON-<code>-<n> form back into a SerialNumber.
//
// Example:
//
//	serial, err := kernel.ParseSerialNumber("KON-R-12")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(serial.Kind(), serial.Sequence()) // reefer 12
func ParseSerialNumber(s string) (SerialNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != serialPrefix {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serial number is invalid",
			fmt.Errorf("%q does not match %s-<code>-<n>", s, serialPrefix),
		)
	}

	kind, err := KindFromCode(parts[1])
	if err != nil {
		return SerialNumber{}, err
	}

	sequence, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil || sequence == 0 {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serial number is invalid",
			fmt.Errorf("%q is not a positive sequence", parts[2]),
		)
	}

	return SerialNumber{kind: kind, sequence: sequence}, nil
}

// Kind returns the container kind encoded in the serial.
func (s SerialNumber) Kind() Kind {
	return s.kind
}

// Sequence returns the counter value assigned at construction.
func (s SerialNumber) Sequence() uint64 {
	return s.sequence
}

// String returns the KON-<code>-<n> form.
func (s SerialNumber) String() string {
	return fmt.Sprintf("%s-%s-%d", serialPrefix, s.kind.Code(), s.sequence)
}

// IsEqual reports whether both serials identify the same container.
func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s == other
}

// Validate returns ErrSerialNumberIsNotConstructed for the zero value.
func (s SerialNumber) Validate() error {
	if s.sequence == 0 || s.kind.Validate() != nil {
		return ErrSerialNumberIsNotConstructed
	}
	return nil
}
