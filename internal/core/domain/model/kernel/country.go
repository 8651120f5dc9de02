package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// CountryCode is an ISO 3166-1 alpha-3 country code from the closed set of
// countries the platform ships to. The zero value ("") is invalid.
//
// Codes are matched case-sensitively and exactly; there is no locale-aware or
// fuzzy parsing. Use ParseCountryCode or TryParseCountryCode to obtain one.
type CountryCode string

const (
	// Europe
	POL CountryCode = "POL" // Poland
	DEU CountryCode = "DEU" // Germany
	FRA CountryCode = "FRA" // France
	GBR CountryCode = "GBR" // United Kingdom
	ITA CountryCode = "ITA" // Italy
	ESP CountryCode = "ESP" // Spain
	NLD CountryCode = "NLD" // Netherlands
	BEL CountryCode = "BEL" // Belgium
	AUT CountryCode = "AUT" // Austria
	CZE CountryCode = "CZE" // Czech Republic
	SVK CountryCode = "SVK" // Slovakia
	HUN CountryCode = "HUN" // Hungary
	ROU CountryCode = "ROU" // Romania
	BGR CountryCode = "BGR" // Bulgaria
	HRV CountryCode = "HRV" // Croatia
	SVN CountryCode = "SVN" // Slovenia
	SWE CountryCode = "SWE" // Sweden
	NOR CountryCode = "NOR" // Norway
	DNK CountryCode = "DNK" // Denmark
	FIN CountryCode = "FIN" // Finland
	GRC CountryCode = "GRC" // Greece
	PRT CountryCode = "PRT" // Portugal
	IRL CountryCode = "IRL" // Ireland
	LUX CountryCode = "LUX" // Luxembourg
	MLT CountryCode = "MLT" // Malta
	CYP CountryCode = "CYP" // Cyprus

	// Asia
	CHN CountryCode = "CHN" // China
	JPN CountryCode = "JPN" // Japan
	IND CountryCode = "IND" // India
	KOR CountryCode = "KOR" // South Korea
	THA CountryCode = "THA" // Thailand
	VNM CountryCode = "VNM" // Vietnam
	MYS CountryCode = "MYS" // Malaysia
	SGP CountryCode = "SGP" // Singapore
	IDN CountryCode = "IDN" // Indonesia
	PHL CountryCode = "PHL" // Philippines

	// Americas
	USA CountryCode = "USA" // United States
	CAN CountryCode = "CAN" // Canada
	MEX CountryCode = "MEX" // Mexico
	BRA CountryCode = "BRA" // Brazil
	ARG CountryCode = "ARG" // Argentina
	CHL CountryCode = "CHL" // Chile

	// Africa
	ZAF CountryCode = "ZAF" // South Africa
	EGY CountryCode = "EGY" // Egypt
	NGA CountryCode = "NGA" // Nigeria

	// Oceania
	AUS CountryCode = "AUS" // Australia
	NZL CountryCode = "NZL" // New Zealand
)

// countryCodes is the closed enumeration set, built once at package
// initialization and never mutated.
var countryCodes = map[CountryCode]struct{}{
	POL: {}, DEU: {}, FRA: {}, GBR: {}, ITA: {}, ESP: {}, NLD: {}, BEL: {},
	AUT: {}, CZE: {}, SVK: {}, HUN: {}, ROU: {}, BGR: {}, HRV: {}, SVN: {},
	SWE: {}, NOR: {}, DNK: {}, FIN: {}, GRC: {}, PRT: {}, IRL: {}, LUX: {},
	MLT: {}, CYP: {},
	CHN: {}, JPN: {}, IND: {}, KOR: {}, THA: {}, VNM: {}, MYS: {}, SGP: {},
	IDN: {}, PHL: {},
	USA: {}, CAN: {}, MEX: {}, BRA: {}, ARG: {}, CHL: {},
	ZAF: {}, EGY: {}, NGA: {},
	AUS: {}, NZL: {},
}

// ParseCountryCode parses an ISO 3166-1 alpha-3 code. Blank input and any
// string that is not an exact, case-sensitive member of the enumeration fail
// with a ValueIsInvalidError.
func ParseCountryCode(code string) (CountryCode, error) {
	if isBlank(code) {
		return "", errs.NewValueIsRequiredError("countryCode")
	}

	cc, ok := TryParseCountryCode(code)
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("countryCode",
			fmt.Errorf("%q is not a valid ISO 3166-1 alpha-3 country code (e.g., POL, DEU, FRA)", code))
	}

	return cc, nil
}

// TryParseCountryCode is the non-failing variant of ParseCountryCode.
// It reports whether code is a member of the enumeration.
func TryParseCountryCode(code string) (CountryCode, bool) {
	cc := CountryCode(code)
	if _, ok := countryCodes[cc]; !ok {
		return "", false
	}
	return cc, true
}

// String returns the three-letter code.
func (c CountryCode) String() string {
	return string(c)
}

// Validate checks membership in the closed enumeration.
func (c CountryCode) Validate() error {
	if _, ok := countryCodes[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("countryCode",
			fmt.Errorf("%q is not a valid ISO 3166-1 alpha-3 country code", string(c)))
	}
	return nil
}
