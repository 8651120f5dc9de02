package userrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// UserRepositoryIntegrationTestSuite provides integration tests for UserRepository
// using PostgreSQL containers to verify database persistence behavior.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_LocalUser_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createLocalUser("jan@example.com")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("jan@example.com", retrieved.Email().Value())
	suite.Equal("Jan", retrieved.FirstName())
	suite.Equal("Kowalski", retrieved.LastName())
	suite.Require().NotNil(retrieved.PasswordHash())
	suite.Equal("bcrypt-hash", *retrieved.PasswordHash())
	suite.Equal(user.RoleUser, retrieved.Role())
	suite.False(retrieved.IsEmailVerified())
	suite.True(retrieved.IsActive())
	suite.Nil(retrieved.EmailVerificationToken())
	suite.Nil(retrieved.PasswordResetToken())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_Fails() {
	ctx := context.Background()

	first := suite.createLocalUser("jan@example.com")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createLocalUser("jan@example.com")
	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_TokenPairPersistsAndClears() {
	ctx := context.Background()

	aggregate := suite.createLocalUser("jan@example.com")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// issue a token and persist the pair
	suite.Require().NoError(aggregate.GenerateEmailVerificationToken("tok-123"))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	withToken, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(withToken.EmailVerificationToken())
	suite.Equal("tok-123", withToken.EmailVerificationToken().Value())

	// consume the token; the cleared pair must persist as NULLs
	suite.Require().NoError(aggregate.VerifyEmail("tok-123"))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	verified, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(verified.IsEmailVerified())
	suite.Nil(verified.EmailVerificationToken())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_DeactivationPersists() {
	ctx := context.Background()

	aggregate := suite.createLocalUser("jan@example.com")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_IsCaseSensitive() {
	ctx := context.Background()

	aggregate := suite.createLocalUser("Jan@Example.com")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	exact, err := user.NewEmail("Jan@Example.com")
	suite.Require().NoError(err)
	retrieved, err := suite.repository.GetByEmail(ctx, exact)
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())

	// a differently cased address is a different value
	lower, err := user.NewEmail("jan@example.com")
	suite.Require().NoError(err)
	_, err = suite.repository.GetByEmail(ctx, lower)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	exists, err := suite.repository.ExistsByEmail(ctx, lower)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestExistsByEmail() {
	ctx := context.Background()

	aggregate := suite.createLocalUser("jan@example.com")
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	email, err := user.NewEmail("jan@example.com")
	suite.Require().NoError(err)
	exists, err := suite.repository.ExistsByEmail(ctx, email)
	suite.Require().NoError(err)
	suite.True(exists)

	other, err := user.NewEmail("other@example.com")
	suite.Require().NoError(err)
	exists, err = suite.repository.ExistsByEmail(ctx, other)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetAllWithExpiredTokens() {
	ctx := context.Background()

	// one user with an expired verification token
	stale := suite.restoreUserWithTokens("stale@example.com",
		user.RestorePendingToken("old", time.Now().UTC().Add(-time.Minute)), nil)
	// one user with a still-valid reset token
	fresh := suite.restoreUserWithTokens("fresh@example.com",
		nil, user.RestorePendingToken("fresh", time.Now().UTC().Add(time.Hour)))
	// one user with no tokens at all
	clean := suite.createLocalUser("clean@example.com")

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.repository.Add(ctx, clean))

	expired, err := suite.repository.GetAllWithExpiredTokens(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(expired, 1)
	suite.Equal(stale.ID(), expired[0].ID())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NonExistentUser_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_NonExistentUser_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createLocalUser("ghost@example.com"))
	suite.Require().Error(err)
}

// createLocalUser creates a basic local user aggregate for tests.
func (suite *UserRepositoryIntegrationTestSuite) createLocalUser(email string) *user.User {
	aggregate, err := user.NewLocalUser(kernel.NewUUID(), email, "Jan", "Kowalski", "bcrypt-hash")
	suite.Require().NoError(err)
	return aggregate
}

// restoreUserWithTokens rebuilds a user carrying the given token pairs.
func (suite *UserRepositoryIntegrationTestSuite) restoreUserWithTokens(
	email string,
	verification, reset *user.PendingToken,
) *user.User {
	hash := "bcrypt-hash"
	now := time.Now().UTC()
	aggregate, err := user.RestoreUser(
		kernel.NewUUID(),
		user.RestoreEmail(email),
		"Jan", "Kowalski",
		&hash,
		user.RoleUser,
		false,
		verification,
		reset,
		true,
		now, now,
	)
	suite.Require().NoError(err)
	return aggregate
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
