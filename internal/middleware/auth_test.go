package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/SscSPs/garage_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	auth   *MockAuthenticator
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.auth = new(MockAuthenticator)
	suite.router = gin.New()

	protected := suite.router.Group("/", middleware.AuthMiddleware(suite.auth))
	protected.GET("/me", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": userID})
	})
	protected.GET("/admin", middleware.AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (suite *AuthMiddlewareTestSuite) do(path, authHeader string) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var body dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	for _, header := range []string{"", "Token abc", "Bearer", "Bearer   "} {
		w, body := suite.do("/me", header)
		suite.Equal(http.StatusUnauthorized, w.Code, header)
		suite.Equal("No token provided", body.Message)
	}
	suite.auth.AssertNotCalled(suite.T(), "Authenticate", mock.Anything, mock.Anything)
}

func (suite *AuthMiddlewareTestSuite) TestInvalidToken() {
	suite.auth.On("Authenticate", mock.Anything, "bad").
		Return(nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid token", apperrors.ErrInvalidToken)).Once()

	w, body := suite.do("/me", "Bearer bad")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid token", body.Message)
	suite.auth.AssertExpectations(suite.T())
}

func (suite *AuthMiddlewareTestSuite) TestUserVanished() {
	suite.auth.On("Authenticate", mock.Anything, "orphan").
		Return(nil, apperrors.NewAppError(http.StatusNotFound, "User not found", apperrors.ErrNotFound)).Once()

	w, body := suite.do("/me", "Bearer orphan")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("User not found", body.Message)
}

func (suite *AuthMiddlewareTestSuite) TestStoreFailureIsGeneric() {
	suite.auth.On("Authenticate", mock.Anything, "tok").Return(nil, assertAnError).Once()

	w, body := suite.do("/me", "Bearer tok")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Internal Server Error", body.Message)
}

func (suite *AuthMiddlewareTestSuite) TestValidTokenAttachesUser() {
	suite.auth.On("Authenticate", mock.Anything, "good").
		Return(&domain.User{ID: "u-1", Username: "alice"}, nil).Once()

	w, _ := suite.do("/me", "bearer good")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"id":"u-1"}`, w.Body.String())
}

func (suite *AuthMiddlewareTestSuite) TestAdminGate() {
	suite.auth.On("Authenticate", mock.Anything, "member").Return(&domain.User{ID: "u-1"}, nil).Once()
	suite.auth.On("Authenticate", mock.Anything, "root").Return(&domain.User{ID: "u-2", IsAdmin: true}, nil).Once()

	w, body := suite.do("/admin", "Bearer member")
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Admin access required", body.Message)

	w, _ = suite.do("/admin", "Bearer root")
	suite.Equal(http.StatusOK, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
