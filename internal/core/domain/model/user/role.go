package user

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role represents the platform role assigned to a user account.
// Authorization policy (who may hold or assign which role) is an external
// concern; the aggregate only guarantees the role is a recognized member.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is the default role for every newly registered account.
	RoleUser

	// RoleSuperAdmin has unrestricted platform access.
	RoleSuperAdmin

	// RoleAdmin administers the platform.
	RoleAdmin

	// RoleMerchant creates shipment orders for their shop.
	RoleMerchant

	// RoleRecipient receives shipments.
	RoleRecipient

	// RoleCarrier operates a transport fleet.
	RoleCarrier

	// RoleCourier performs last-mile delivery.
	RoleCourier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "Unknown",
		RoleUser:       "User",
		RoleSuperAdmin: "SuperAdmin",
		RoleAdmin:      "Admin",
		RoleMerchant:   "Merchant",
		RoleRecipient:  "Recipient",
		RoleCarrier:    "Carrier",
		RoleCourier:    "Courier",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:       "User",
		RoleSuperAdmin: "SuperAdmin",
		RoleAdmin:      "Admin",
		RoleMerchant:   "Merchant",
		RoleRecipient:  "Recipient",
		RoleCarrier:    "Carrier",
		RoleCourier:    "Courier",
	}
}

// Validate checks if the Role value is one of the recognized roles.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role, or "Unknown" for
// unrecognized values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// ParseRole maps a role name to its Role value, case-sensitively.
// Used when mapping transport payloads.
func ParseRole(name string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", name))
}
