// Package mocks provides hand-written testify mocks for the
// repository interfaces, used by the service tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ufsm/equivalencias/models"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEquivalenceRepository mocks repositories.EquivalenceRepository
type MockEquivalenceRepository struct {
	mock.Mock
}

// NewMockEquivalenceRepository creates a mock with expectations
// asserted on test cleanup
func NewMockEquivalenceRepository(t testingT) *MockEquivalenceRepository {
	m := &MockEquivalenceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEquivalenceRepository) GetAll(ctx context.Context) ([]models.Equivalence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Equivalence), args.Error(1)
}

func (m *MockEquivalenceRepository) GetByID(ctx context.Context, id int) (*models.Equivalence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Equivalence), args.Error(1)
}

func (m *MockEquivalenceRepository) Create(ctx context.Context, equiv *models.Equivalence) error {
	args := m.Called(ctx, equiv)
	return args.Error(0)
}

func (m *MockEquivalenceRepository) Update(ctx context.Context, equiv *models.Equivalence) error {
	args := m.Called(ctx, equiv)
	return args.Error(0)
}

func (m *MockEquivalenceRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEquivalenceRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockAdminRepository mocks repositories.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

// NewMockAdminRepository creates a mock with expectations asserted on
// test cleanup
func NewMockAdminRepository(t testingT) *MockAdminRepository {
	m := &MockAdminRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}
