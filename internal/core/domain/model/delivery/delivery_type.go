package delivery

import (
	"fmt"
	"slices"
	"strings"

	"dashboard/internal/pkg/errs"
)

// Type is the handling unit of a shipment.
type Type string

const (
	Pallet Type = "pallet"
	Carton Type = "carton"
	Parcel Type = "parcel"
)

// KnownTypes lists the recognized delivery types.
var KnownTypes = []Type{Pallet, Carton, Parcel}

// ParseType normalizes case and whitespace. An empty value is allowed and
// returns "".
func ParseType(raw string) (Type, error) {
	s := Type(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return "", nil
	}
	if slices.Contains(KnownTypes, s) {
		return s, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("deliveryType", fmt.Errorf("%q is not a known delivery type", raw))
}

// IsKnown reports whether t is exactly one of KnownTypes.
func (t Type) IsKnown() bool {
	return slices.Contains(KnownTypes, t)
}
