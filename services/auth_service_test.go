package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/ufsm/equivalencias/models"
	"github.com/ufsm/equivalencias/repositories"
	"github.com/ufsm/equivalencias/repositories/mocks"
)

// AuthServiceTestSuite is a test suite for the auth service
type AuthServiceTestSuite struct {
	suite.Suite
	service       AuthService
	mockAdminRepo *mocks.MockAdminRepository
	storedAdmin   *models.Admin
}

// SetupTest sets up the test suite before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockAdminRepo = mocks.NewMockAdminRepository(suite.T())
	suite.service = NewAuthService(suite.mockAdminRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("adm4125"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.storedAdmin = &models.Admin{ID: 1, Username: "admin", PasswordHash: string(hash)}
}

// TestLogin_Success tests login with matching credentials
func (suite *AuthServiceTestSuite) TestLogin_Success() {
	suite.mockAdminRepo.On("GetByUsername", mock.Anything, "admin").Return(suite.storedAdmin, nil)

	admin, err := suite.service.Login(context.Background(), "admin", "adm4125")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), admin)
	assert.Equal(suite.T(), 1, admin.ID)
	assert.Equal(suite.T(), "admin", admin.Username)
}

// TestLogin_UnknownUsername tests that an unknown username yields the
// same error as a wrong password
func (suite *AuthServiceTestSuite) TestLogin_UnknownUsername() {
	suite.mockAdminRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, repositories.ErrNotFound)

	admin, err := suite.service.Login(context.Background(), "nobody", "adm4125")

	assert.Nil(suite.T(), admin)
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestLogin_WrongPassword tests that a wrong password yields the same
// error as an unknown username
func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	suite.mockAdminRepo.On("GetByUsername", mock.Anything, "admin").Return(suite.storedAdmin, nil)

	admin, err := suite.service.Login(context.Background(), "admin", "wrong")

	assert.Nil(suite.T(), admin)
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestLogin_StoreError tests that store failures are not reported as
// bad credentials
func (suite *AuthServiceTestSuite) TestLogin_StoreError() {
	suite.mockAdminRepo.On("GetByUsername", mock.Anything, "admin").
		Return(nil, assert.AnError)

	admin, err := suite.service.Login(context.Background(), "admin", "adm4125")

	assert.Nil(suite.T(), admin)
	assert.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
