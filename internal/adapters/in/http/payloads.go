package http

// AddressPayload carries a shipping address in requests and responses.
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber     string         `json:"orderNumber"`
	ShippingAddress AddressPayload `json:"shippingAddress"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// RegisterOAuthUserRequest is the body of POST /api/v1/users/oauth.
type RegisterOAuthUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// VerifyEmailRequest is the body of POST /api/v1/users/:id/verify.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// RequestPasswordResetRequest is the body of POST /api/v1/password-resets.
type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/v1/password-resets/confirm.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ChangeUserRoleRequest is the body of PATCH /api/v1/users/:id/role.
type ChangeUserRoleRequest struct {
	Role string `json:"role"`
}

// SetUserActivationRequest is the body of PATCH /api/v1/users/:id/activation.
type SetUserActivationRequest struct {
	Active bool `json:"active"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID              string         `json:"id"`
	OrderNumber     string         `json:"orderNumber"`
	Status          string         `json:"status"`
	ShippingAddress AddressPayload `json:"shippingAddress"`
	OrderDate       string         `json:"orderDate"`
}

// PagedOrdersResponse is the body of GET /api/v1/orders: one page of
// orders plus the total count matching the filters.
type PagedOrdersResponse struct {
	Items      []OrderResponse `json:"items"`
	TotalCount int64           `json:"totalCount"`
	PageNumber int             `json:"pageNumber"`
	PageSize   int             `json:"pageSize"`
}

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// TokenResponse returns an issued one-time token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform error body for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
