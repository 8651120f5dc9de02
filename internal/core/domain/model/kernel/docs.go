// Package kernel provides core domain primitives shared by the order and user
// aggregates.
//
// The package includes:
//   - UUID: a value object for entity identity with validation and comparison
//   - Address: a validated, immutable shipping address
//   - CountryCode: a closed enumeration of ISO 3166-1 alpha-3 codes with a
//     case-sensitive exact-match parser
//
// All primitives are immutable, enforce their invariants at construction, and
// are safe for concurrent use.
package kernel
