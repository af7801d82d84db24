package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	portssvc "github.com/SscSPs/garage_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/garage_invoice_app/internal/core/services"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/SscSPs/garage_invoice_app/internal/platform/config"
	"github.com/SscSPs/garage_invoice_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

var errStoreDown = errors.New("store unavailable")

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		RefreshTokenExpiryDuration: 24 * time.Hour,
		BcryptCost:                 bcrypt.MinCost,
	}
}

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	tokens   portssvc.TokenSvc
	service  portssvc.AuthSvcFacade
	ctx      context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.tokens = services.NewTokenService(testConfig())
	suite.service = services.NewAuthService(suite.userRepo, suite.tokens, bcrypt.MinCost)
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) storedUser(password string) *domain.User {
	u, err := domain.NewUser("alice", "alice@example.com", password, bcrypt.MinCost)
	suite.Require().NoError(err)
	u.ID = "64b7f0c2a1b2c3d4e5f60718"
	return u
}

func (suite *AuthServiceTestSuite) assertAppError(err error, status int, msg string) {
	var appErr *apperrors.AppError
	suite.Require().True(errors.As(err, &appErr), "expected AppError, got %v", err)
	suite.Equal(status, appErr.Status)
	suite.Equal(msg, appErr.Message)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Username: "alice", Email: "Alice@Example.com", Password: "pw123"}
	suite.userRepo.On("FindUserByUsernameOrEmail", suite.ctx, "alice", "alice@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("CreateUser", suite.ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" &&
			u.PasswordHash != "pw123" && u.CheckPassword("pw123") && !u.IsAdmin && !u.CreatedAt.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = "new-id"
	}).Return(nil).Once()

	user, err := suite.service.Register(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal("new-id", user.ID)
}

func (suite *AuthServiceTestSuite) TestRegister_TrimsUsername() {
	suite.userRepo.On("FindUserByUsernameOrEmail", suite.ctx, "alice", "alice@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("CreateUser", suite.ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice"
	})).Return(nil).Once()

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: " alice\t", Email: "alice@example.com", Password: "pw123"})

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
}

func (suite *AuthServiceTestSuite) TestBlankUsernameIsRejected() {
	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "   ", Email: "a@x.com", Password: "pw"})
	suite.assertAppError(err, http.StatusBadRequest, "Validation failed")
	suite.Equal([]apperrors.FieldError{{Field: "username", Message: "Username is required"}}, apperrors.Resolve(err).Fields)

	_, err = suite.service.Login(suite.ctx, dto.LoginRequest{Username: " ", Password: "pw"})
	suite.Equal("Username is required", apperrors.Resolve(err).Fields[0].Message)

	suite.userRepo.AssertNotCalled(suite.T(), "FindUserByUsernameOrEmail", mock.Anything, mock.Anything, mock.Anything)
	suite.userRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
	suite.userRepo.AssertNotCalled(suite.T(), "FindUserByUsername", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateIdentity() {
	suite.userRepo.On("FindUserByUsernameOrEmail", suite.ctx, "alice", "alice@example.com").Return(suite.storedUser("x"), nil).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"})

	suite.assertAppError(err, http.StatusBadRequest, "Username or email already exists")
	suite.userRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateOnInsert() {
	suite.userRepo.On("FindUserByUsernameOrEmail", suite.ctx, "bob", "bob@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("CreateUser", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "pw"})

	suite.assertAppError(err, http.StatusBadRequest, "Username or email already exists")
}

func (suite *AuthServiceTestSuite) TestLogin_InvalidCredentialsAreIndistinguishable() {
	suite.userRepo.On("FindUserByUsername", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	suite.userRepo.On("FindUserByUsername", suite.ctx, "alice").Return(suite.storedUser("right"), nil).Once()

	_, errUnknown := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "ghost", Password: "x"})
	_, errWrong := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})

	suite.assertAppError(errUnknown, http.StatusUnauthorized, "Invalid credentials")
	suite.assertAppError(errWrong, http.StatusUnauthorized, "Invalid credentials")
	suite.userRepo.AssertNotCalled(suite.T(), "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_PersistsRefreshToken() {
	user := suite.storedUser("pw123")
	suite.userRepo.On("FindUserByUsername", suite.ctx, "alice").Return(user, nil).Once()

	var stored string
	suite.userRepo.On("UpdateRefreshToken", suite.ctx, user.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { stored = args.String(2) }).Return(nil).Once()

	session, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "alice", Password: "pw123"})

	suite.Require().NoError(err)
	suite.Equal(stored, session.RefreshToken)
	suite.NotEqual(session.AccessToken, session.RefreshToken)

	id, err := suite.tokens.Verify(session.AccessToken, utils.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(user.ID, id)
	_, err = suite.tokens.Verify(session.RefreshToken, utils.AccessToken)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestLogin_TrimsUsername() {
	user := suite.storedUser("pw123")
	suite.userRepo.On("FindUserByUsername", suite.ctx, "alice").Return(user, nil).Once()
	suite.userRepo.On("UpdateRefreshToken", suite.ctx, user.ID, mock.Anything).Return(nil).Once()

	session, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "alice ", Password: "pw123"})

	suite.Require().NoError(err)
	suite.Equal(user.ID, session.User.ID)
}

func (suite *AuthServiceTestSuite) TestLogin_StoreFailure() {
	user := suite.storedUser("pw123")
	suite.userRepo.On("FindUserByUsername", suite.ctx, "alice").Return(user, nil).Once()
	suite.userRepo.On("UpdateRefreshToken", suite.ctx, user.ID, mock.Anything).Return(errStoreDown).Once()

	_, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "alice", Password: "pw123"})

	suite.ErrorIs(err, errStoreDown)
	suite.Equal(http.StatusInternalServerError, apperrors.Resolve(err).Status)
}

func (suite *AuthServiceTestSuite) TestLogout() {
	suite.userRepo.On("ClearRefreshToken", suite.ctx, "u1").Return(nil).Twice()
	suite.userRepo.On("ClearRefreshToken", suite.ctx, "gone").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.Logout(suite.ctx, "u1"))
	suite.NoError(suite.service.Logout(suite.ctx, "u1"))
	suite.assertAppError(suite.service.Logout(suite.ctx, "gone"), http.StatusNotFound, "User not found")
}

func (suite *AuthServiceTestSuite) TestRefresh_MissingToken() {
	_, err := suite.service.Refresh(suite.ctx, "")
	suite.assertAppError(err, http.StatusBadRequest, "Refresh token required")
}

func (suite *AuthServiceTestSuite) TestRefresh_UnknownToken() {
	suite.userRepo.On("FindUserByRefreshToken", suite.ctx, "stale").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Refresh(suite.ctx, "stale")
	suite.assertAppError(err, http.StatusUnauthorized, "Invalid refresh token")
}

func (suite *AuthServiceTestSuite) TestRefresh_StoredButWrongType() {
	user := suite.storedUser("pw")
	access, err := suite.tokens.IssueAccess(user.ID)
	suite.Require().NoError(err)
	suite.userRepo.On("FindUserByRefreshToken", suite.ctx, access).Return(user, nil).Once()

	_, err = suite.service.Refresh(suite.ctx, access)
	suite.assertAppError(err, http.StatusUnauthorized, "Invalid refresh token")
}

func (suite *AuthServiceTestSuite) TestRefresh_StoredButExpired() {
	cfg := testConfig()
	cfg.RefreshTokenExpiryDuration = -time.Minute
	expired, err := services.NewTokenService(cfg).IssueRefresh("64b7f0c2a1b2c3d4e5f60718")
	suite.Require().NoError(err)

	user := suite.storedUser("pw")
	user.RefreshToken = expired
	suite.userRepo.On("FindUserByRefreshToken", suite.ctx, expired).Return(user, nil).Once()

	_, err = suite.service.Refresh(suite.ctx, expired)
	suite.assertAppError(err, http.StatusUnauthorized, "Invalid refresh token")
}

func (suite *AuthServiceTestSuite) TestRefresh_Success() {
	user := suite.storedUser("pw")
	refresh, err := suite.tokens.IssueRefresh(user.ID)
	suite.Require().NoError(err)
	suite.userRepo.On("FindUserByRefreshToken", suite.ctx, refresh).Return(user, nil).Once()

	access, err := suite.service.Refresh(suite.ctx, refresh)

	suite.Require().NoError(err)
	id, err := suite.tokens.Verify(access, utils.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(user.ID, id)
}

func (suite *AuthServiceTestSuite) TestAuthenticate() {
	user := suite.storedUser("pw")
	access, _ := suite.tokens.IssueAccess(user.ID)
	refresh, _ := suite.tokens.IssueRefresh(user.ID)
	orphan, _ := suite.tokens.IssueAccess("64b7f0c2a1b2c3d4e5f60719")

	suite.userRepo.On("FindUserByID", suite.ctx, user.ID).Return(user, nil).Once()
	suite.userRepo.On("FindUserByID", suite.ctx, "64b7f0c2a1b2c3d4e5f60719").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(suite.ctx, access)
	suite.Require().NoError(err)
	suite.Equal(user.ID, got.ID)

	_, err = suite.service.Authenticate(suite.ctx, refresh)
	suite.assertAppError(err, http.StatusUnauthorized, "Invalid token")

	_, err = suite.service.Authenticate(suite.ctx, "garbage")
	suite.assertAppError(err, http.StatusUnauthorized, "Invalid token")

	_, err = suite.service.Authenticate(suite.ctx, orphan)
	suite.assertAppError(err, http.StatusNotFound, "User not found")
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
