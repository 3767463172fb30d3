package kernel

import (
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
)

// Kind is the closed set of container variants. The kind decides how a
// container computes its effective capacity and its residual load after
// unloading, and supplies the letter code embedded in serial numbers.
//
//	Kind     Code   Load limit                    Residual after Unload
//	Liquid   L      90% of max (50% hazardous)    0
//	Gas      G      100% of max                   5% of max
//	Reefer   R      100% of max                   0
type Kind int

const (
	// UnknownKind is the zero value and is never valid.
	UnknownKind Kind = iota

	// Liquid containers carry fluids and may be flagged hazardous.
	Liquid

	// Gas containers carry pressurised gas and cannot be purged completely.
	Gas

	// Reefer containers are refrigerated and hold a product at a fixed temperature.
	Reefer
)

func getKindCodes() map[Kind]string {
	return map[Kind]string{
		Liquid: "L",
		Gas:    "G",
		Reefer: "R",
	}
}

func getKindNames() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Liquid:      "liquid",
		Gas:         "gas",
		Reefer:      "reefer",
	}
}

// Validate returns an error for UnknownKind and any value outside the closed set.
func (k Kind) Validate() error {
	if _, ok := getKindCodes()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a container kind", k))
	}
	return nil
}

// Code returns the single-letter serial number code, or "" for an invalid kind.
func (k Kind) Code() string {
	return getKindCodes()[k]
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if name, ok := getKindNames()[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromCode resolves a serial number letter code ("L", "G", "R").
func KindFromCode(code string) (Kind, error) {
	for kind, c := range getKindCodes() {
		if c == code {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
		"kind code is invalid",
		fmt.Errorf("%q is not one of L, G, R", code),
	)
}

// ParseKind resolves a kind by name, case-insensitively ("liquid", "Gas", "REEFER").
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for kind, n := range getKindNames() {
		if kind != UnknownKind && n == normalized {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
		"kind is invalid",
		fmt.Errorf("%q is not one of liquid, gas, reefer", name),
	)
}
