package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an Address
// that was not created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object holding a shipping destination.
// Street and city are required and must not be blank; state and postal code
// are optional and stored as empty strings when absent; the country is a
// member of the CountryCode enumeration.
//
// The zero value is invalid and fails Validate.
//
// Example:
//
//	addr, err := kernel.NewAddress("Dluga 5", "Gdansk", "", "80-827", "POL")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	country    CountryCode

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street and city fail with a
// ValueIsRequiredError when blank after trimming; countryCode is parsed
// case-sensitively against the closed enumeration. State and postal code may
// be empty.
func NewAddress(street, city, state, postalCode, countryCode string) (Address, error) {
	if isBlank(street) {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if isBlank(city) {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	country, err := ParseCountryCode(countryCode)
	if err != nil {
		return Address{}, err
	}

	return Address{
		street:     street,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Street returns the required street line.
func (a Address) Street() string {
	return a.street
}

// City returns the required city name.
func (a Address) City() string {
	return a.city
}

// State returns the optional state or province, empty when absent.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the optional postal code, empty when absent.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the parsed country code.
func (a Address) Country() CountryCode {
	return a.country
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

// Validate ensures the address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
