package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByNumberQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByNumberQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderByNumberQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderByNumberQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderByNumberQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderByNumberQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderByNumberQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsOrder() {
	address, err := kernel.NewAddress("1 Harbor Blvd", "Oakland", "CA", "94607", "USA")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-2024-042", address)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	query, err := queries.NewGetOrderByNumberQuery("ORD-2024-042")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), result.ID)
	suite.Equal("ORD-2024-042", result.OrderNumber)
	suite.Equal(order.Pending, result.Status)
	suite.Equal("1 Harbor Blvd", result.Street)
	suite.Equal("Oakland", result.City)
	suite.Equal("CA", result.State)
	suite.Equal("94607", result.PostalCode)
	suite.Equal("USA", result.Country)
}

func (suite *GetOrderByNumberQueryHandlerTestSuite) TestHandle_UnknownOrderNumber_ReturnsNotFound() {
	query, err := queries.NewGetOrderByNumberQuery("ORD-MISSING-001")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByNumberQueryHandlerTestSuite) TestHandle_ExactMatchOnly() {
	address, err := kernel.NewAddress("1 Harbor Blvd", "Oakland", "CA", "94607", "USA")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-2024-042", address)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	query, err := queries.NewGetOrderByNumberQuery("ord-2024-042")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByNumberQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderByNumberQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderByNumberQuery constructor")
}

func TestGetOrderByNumberQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByNumberQueryHandlerTestSuite))
}
