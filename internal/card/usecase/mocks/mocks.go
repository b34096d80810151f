// Package mocks provides mock implementations of card use case interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// MockCardUseCase is a mock implementation of CardUseCase for testing.
type MockCardUseCase struct {
	mock.Mock
}

// NewMockCardUseCase creates a MockCardUseCase that asserts its expectations on test cleanup.
func NewMockCardUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCardUseCase {
	m := &MockCardUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GenerateByBrand mocks the GenerateByBrand method of CardUseCase.
func (m *MockCardUseCase) GenerateByBrand(ctx context.Context, brand cardDomain.Brand) (string, error) {
	args := m.Called(ctx, brand)
	return args.String(0), args.Error(1)
}

// GenerateListByBrand mocks the GenerateListByBrand method of CardUseCase.
func (m *MockCardUseCase) GenerateListByBrand(
	ctx context.Context,
	count int,
	brand cardDomain.Brand,
) ([]string, error) {
	args := m.Called(ctx, count, brand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// GenerateMapByBrands mocks the GenerateMapByBrands method of CardUseCase.
func (m *MockCardUseCase) GenerateMapByBrands(
	ctx context.Context,
	countEach int,
	brands []cardDomain.Brand,
) (map[cardDomain.Brand][]string, error) {
	args := m.Called(ctx, countEach, brands)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[cardDomain.Brand][]string), args.Error(1)
}

// GenerateByPrefix mocks the GenerateByPrefix method of CardUseCase.
func (m *MockCardUseCase) GenerateByPrefix(
	ctx context.Context,
	countEachPrefix int,
	lengths []int,
	prefixes []int64,
) (map[int64][]string, error) {
	args := m.Called(ctx, countEachPrefix, lengths, prefixes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]string), args.Error(1)
}

// PassesLuhnCheck mocks the PassesLuhnCheck method of CardUseCase.
func (m *MockCardUseCase) PassesLuhnCheck(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// Inspect mocks the Inspect method of CardUseCase.
func (m *MockCardUseCase) Inspect(ctx context.Context, number string) (*cardDomain.Inspection, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.Inspection), args.Error(1)
}

// ListBrands mocks the ListBrands method of CardUseCase.
func (m *MockCardUseCase) ListBrands(ctx context.Context) ([]*cardDomain.IssuerRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cardDomain.IssuerRule), args.Error(1)
}

// GetBrand mocks the GetBrand method of CardUseCase.
func (m *MockCardUseCase) GetBrand(ctx context.Context, brand cardDomain.Brand) (*cardDomain.IssuerRule, error) {
	args := m.Called(ctx, brand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.IssuerRule), args.Error(1)
}

// MockCardGenerator is a mock implementation of CardGenerator for testing.
type MockCardGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of CardGenerator.
func (m *MockCardGenerator) Generate(prefix int64, length int) (string, error) {
	args := m.Called(prefix, length)
	return args.String(0), args.Error(1)
}

// GenerateWithLengths mocks the GenerateWithLengths method of CardGenerator.
func (m *MockCardGenerator) GenerateWithLengths(prefix int64, lengths []int) (string, error) {
	args := m.Called(prefix, lengths)
	return args.String(0), args.Error(1)
}

// GenerateForRule mocks the GenerateForRule method of CardGenerator.
func (m *MockCardGenerator) GenerateForRule(rule *cardDomain.IssuerRule) (string, error) {
	args := m.Called(rule)
	return args.String(0), args.Error(1)
}
