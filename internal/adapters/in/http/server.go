// Package http exposes the application's use cases over a REST API.
// It translates HTTP requests into commands and queries, and maps
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for order and user account operations.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Order command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// User command handlers
	registerUserHandler         commands.RegisterUserCommandHandler
	registerOAuthUserHandler    commands.RegisterOAuthUserCommandHandler
	requestVerificationHandler  commands.RequestEmailVerificationCommandHandler
	verifyEmailHandler          commands.VerifyEmailCommandHandler
	requestPasswordResetHandler commands.RequestPasswordResetCommandHandler
	resetPasswordHandler        commands.ResetPasswordCommandHandler
	changeUserRoleHandler       commands.ChangeUserRoleCommandHandler
	setUserActivationHandler    commands.SetUserActivationCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getOrderByIDHandler     queries.GetOrderByIdQueryHandler
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	registerOAuthUserHandler commands.RegisterOAuthUserCommandHandler,
	requestVerificationHandler commands.RequestEmailVerificationCommandHandler,
	verifyEmailHandler commands.VerifyEmailCommandHandler,
	requestPasswordResetHandler commands.RequestPasswordResetCommandHandler,
	resetPasswordHandler commands.ResetPasswordCommandHandler,
	changeUserRoleHandler commands.ChangeUserRoleCommandHandler,
	setUserActivationHandler commands.SetUserActivationCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIdQueryHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		registerUserHandler:         registerUserHandler,
		registerOAuthUserHandler:    registerOAuthUserHandler,
		requestVerificationHandler:  requestVerificationHandler,
		verifyEmailHandler:          verifyEmailHandler,
		requestPasswordResetHandler: requestPasswordResetHandler,
		resetPasswordHandler:        resetPasswordHandler,
		changeUserRoleHandler:       changeUserRoleHandler,
		setUserActivationHandler:    setUserActivationHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getOrderByIDHandler:         getOrderByIDHandler,
		getOrderByNumberHandler:     getOrderByNumberHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.GET("/orders/by-number/:orderNumber", s.GetOrderByNumber)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	api.POST("/users", s.RegisterUser)
	api.POST("/users/oauth", s.RegisterOAuthUser)
	api.POST("/users/:id/verification-requests", s.RequestEmailVerification)
	api.POST("/users/:id/verify", s.VerifyEmail)
	api.PATCH("/users/:id/role", s.ChangeUserRole)
	api.PATCH("/users/:id/activation", s.SetUserActivation)

	api.POST("/password-resets", s.RequestPasswordReset)
	api.POST("/password-resets/confirm", s.ResetPassword)
}

// CreateOrder handles POST /api/v1/orders - registers a new shipment order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.OrderNumber,
		req.ShippingAddress.Street,
		req.ShippingAddress.City,
		req.ShippingAddress.State,
		req.ShippingAddress.PostalCode,
		req.ShippingAddress.Country,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.OrderID().String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - advances an
// order through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves a page of orders.
// Accepts pageNumber, pageSize, status, fromDate, and toDate query
// parameters; the date bounds are inclusive.
func (s *Server) GetOrders(ctx echo.Context) error {
	pageNumber := 1
	if raw := ctx.QueryParam("pageNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page number: "+raw)
		}
		pageNumber = n
	}

	pageSize := 10
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid page size: "+raw)
		}
		pageSize = n
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		status = &parsed
	}

	fromDate, err := parseDateParam(ctx.QueryParam("fromDate"))
	if err != nil {
		return badRequest(ctx, "Invalid fromDate: "+ctx.QueryParam("fromDate"))
	}
	toDate, err := parseDateParam(ctx.QueryParam("toDate"))
	if err != nil {
		return badRequest(ctx, "Invalid toDate: "+ctx.QueryParam("toDate"))
	}

	query, err := queries.NewFilteredGetAllOrdersQuery(pageNumber, pageSize, status, fromDate, toDate)
	if err != nil {
		return badRequest(ctx, "Invalid paging: "+err.Error())
	}

	page, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	items := make([]OrderResponse, len(page.Items))
	for i, o := range page.Items {
		items[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, PagedOrdersResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	})
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves a single order
// by its unique identifier.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderByIdQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	o, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetOrderByNumber handles GET /api/v1/orders/by-number/:orderNumber -
// retrieves a single order by its business identifier.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("orderNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	o, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// RegisterUser handles POST /api/v1/users - registers a user with local credentials.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		req.Email,
		req.FirstName,
		req.LastName,
		req.Password,
	)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.UserID().String()})
}

// RegisterOAuthUser handles POST /api/v1/users/oauth - registers a user whose
// identity is vouched for by an external provider.
func (s *Server) RegisterOAuthUser(ctx echo.Context) error {
	var req RegisterOAuthUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterOAuthUserCommand(
		kernel.NewUUID(),
		req.Email,
		req.FirstName,
		req.LastName,
	)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerOAuthUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.UserID().String()})
}

// RequestEmailVerification handles POST /api/v1/users/:id/verification-requests -
// issues a fresh email verification token.
func (s *Server) RequestEmailVerification(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewRequestEmailVerificationCommand(userID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	token, err := s.requestVerificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// VerifyEmail handles POST /api/v1/users/:id/verify - confirms the user's
// email address with a previously issued token.
func (s *Server) VerifyEmail(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var req VerifyEmailRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewVerifyEmailCommand(userID, req.Token)
	if err != nil {
		return badRequest(ctx, "Invalid verification data: "+err.Error())
	}

	if handleErr := s.verifyEmailHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestPasswordReset handles POST /api/v1/password-resets - issues a
// password reset token for the account with the given email.
func (s *Server) RequestPasswordReset(ctx echo.Context) error {
	var req RequestPasswordResetRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	token, err := s.requestPasswordResetHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// ResetPassword handles POST /api/v1/password-resets/confirm - sets a new
// password using a previously issued reset token.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req ResetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResetPasswordCommand(req.Email, req.Token, req.NewPassword)
	if err != nil {
		return badRequest(ctx, "Invalid reset data: "+err.Error())
	}

	if handleErr := s.resetPasswordHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeUserRole handles PATCH /api/v1/users/:id/role - reassigns the user's role.
func (s *Server) ChangeUserRole(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var req ChangeUserRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+req.Role)
	}

	cmd, err := commands.NewChangeUserRoleCommand(userID, role)
	if err != nil {
		return badRequest(ctx, "Invalid role data: "+err.Error())
	}

	if handleErr := s.changeUserRoleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetUserActivation handles PATCH /api/v1/users/:id/activation - activates or
// deactivates the account.
func (s *Server) SetUserActivation(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var req SetUserActivationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetUserActivationCommand(userID, req.Active)
	if err != nil {
		return badRequest(ctx, "Invalid activation data: "+err.Error())
	}

	if handleErr := s.setUserActivationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrderResponse(o queries.OrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		Status:      o.Status.String(),
		ShippingAddress: AddressPayload{
			Street:     o.Street,
			City:       o.City,
			State:      o.State,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		},
		OrderDate: o.OrderDate.UTC().Format(time.RFC3339),
	}
}

// parseDateParam parses an optional date query parameter, accepting
// RFC 3339 timestamps and plain "2006-01-02" dates. An empty value
// means the filter is off.
func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapDomainError translates use case errors to HTTP status codes:
// validation and weak password errors map to 400, missing aggregates to 404,
// illegal state transitions and repeat verification to 409, expired or
// mismatched tokens to 410. Anything unrecognized is a 500.
func mapDomainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPasswordIsTooWeak):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrEmailAlreadyVerified):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrTokenIsInvalid):
		code = http.StatusGone
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
