package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordGenerated(ctx context.Context, source string, count int) {
	m.Called(ctx, source, count)
}

func expectRecorded(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "cards", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "cards", operation, mock.AnythingOfType("time.Duration"), status).
		Once()
}

func TestNewCardUseCaseWithMetrics(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.IsType(t, &cardUseCaseWithMetrics{}, decorator)
}

func TestCardUseCaseWithMetrics_GenerateByBrand(t *testing.T) {
	tests := []struct {
		name           string
		number         string
		err            error
		expectedStatus string
	}{
		{name: "Success_RecordsSuccessMetrics", number: "4111111111111111", expectedStatus: "success"},
		{name: "Error_RecordsErrorMetrics", err: cardDomain.ErrUnknownBrand, expectedStatus: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := mocks.NewMockCardUseCase(t)
			mockMetrics := &mockBusinessMetrics{}

			mockUseCase.On("GenerateByBrand", mock.Anything, cardDomain.Visa).Return(tt.number, tt.err).Once()
			expectRecorded(mockMetrics, "generate_by_brand", tt.expectedStatus)
			if tt.err == nil {
				mockMetrics.On("RecordGenerated", mock.Anything, "VISA", 1).Once()
			}

			decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
			number, err := decorator.GenerateByBrand(context.Background(), cardDomain.Visa)

			assert.Equal(t, tt.number, number)
			assert.Equal(t, tt.err, err)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestCardUseCaseWithMetrics_GenerateListByBrand(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	numbers := []string{"4111111111111111", "4012888888881881"}
	mockUseCase.On("GenerateListByBrand", mock.Anything, 2, cardDomain.Visa).Return(numbers, nil).Once()
	expectRecorded(mockMetrics, "generate_list_by_brand", "success")
	mockMetrics.On("RecordGenerated", mock.Anything, "VISA", 2).Once()

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	result, err := decorator.GenerateListByBrand(context.Background(), 2, cardDomain.Visa)

	assert.NoError(t, err)
	assert.Equal(t, numbers, result)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_GenerateMapByBrands(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	brands := []cardDomain.Brand{cardDomain.Visa}
	mockUseCase.On("GenerateMapByBrands", mock.Anything, 0, brands).Return(nil, cardDomain.ErrInvalidCount).Once()
	expectRecorded(mockMetrics, "generate_map_by_brands", "error")

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	result, err := decorator.GenerateMapByBrands(context.Background(), 0, brands)

	assert.ErrorIs(t, err, cardDomain.ErrInvalidCount)
	assert.Nil(t, result)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_GenerateMapByBrands_CountsPerBrand(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	brands := []cardDomain.Brand{cardDomain.Visa, cardDomain.AmericanExpress}
	cards := map[cardDomain.Brand][]string{
		cardDomain.Visa:            {"4111111111111111", "4012888888881881"},
		cardDomain.AmericanExpress: {"378282246310005", "371449635398431"},
	}
	mockUseCase.On("GenerateMapByBrands", mock.Anything, 2, brands).Return(cards, nil).Once()
	expectRecorded(mockMetrics, "generate_map_by_brands", "success")
	mockMetrics.On("RecordGenerated", mock.Anything, "VISA", 2).Once()
	mockMetrics.On("RecordGenerated", mock.Anything, "AMERICAN_EXPRESS", 2).Once()

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	result, err := decorator.GenerateMapByBrands(context.Background(), 2, brands)

	assert.NoError(t, err)
	assert.Equal(t, cards, result)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_GenerateByPrefix_ErrorRecordsNothingGenerated(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("GenerateByPrefix", mock.Anything, 1, []int{2}, []int64{12}).
		Return(nil, cardDomain.ErrPrefixTooLong).Once()
	expectRecorded(mockMetrics, "generate_by_prefix", "error")

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	_, err := decorator.GenerateByPrefix(context.Background(), 1, []int{2}, []int64{12})

	assert.ErrorIs(t, err, cardDomain.ErrPrefixTooLong)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_GenerateByPrefix(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	expected := map[int64][]string{1: {"18"}}
	mockUseCase.On("GenerateByPrefix", mock.Anything, 1, []int{2}, []int64{1}).Return(expected, nil).Once()
	expectRecorded(mockMetrics, "generate_by_prefix", "success")
	mockMetrics.On("RecordGenerated", mock.Anything, "prefix", 1).Once()

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	result, err := decorator.GenerateByPrefix(context.Background(), 1, []int{2}, []int64{1})

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_PassesLuhnCheck(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	mockUseCase.On("PassesLuhnCheck", mock.Anything, "18").Return(true, nil).Once()
	expectRecorded(mockMetrics, "luhn_check", "success")

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	valid, err := decorator.PassesLuhnCheck(context.Background(), "18")

	assert.NoError(t, err)
	assert.True(t, valid)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_Inspect(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	inspectErr := errors.New("boom")
	mockUseCase.On("Inspect", mock.Anything, "x").Return(nil, inspectErr).Once()
	expectRecorded(mockMetrics, "inspect", "error")

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
	inspection, err := decorator.Inspect(context.Background(), "x")

	assert.ErrorIs(t, err, inspectErr)
	assert.Nil(t, inspection)
	mockMetrics.AssertExpectations(t)
}

func TestCardUseCaseWithMetrics_Brands(t *testing.T) {
	mockUseCase := mocks.NewMockCardUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	rules := []*cardDomain.IssuerRule{}
	mockUseCase.On("ListBrands", mock.Anything).Return(rules, nil).Once()
	mockUseCase.On("GetBrand", mock.Anything, cardDomain.Brand("JCB")).Return(nil, cardDomain.ErrBrandNotFound).Once()
	expectRecorded(mockMetrics, "list_brands", "success")
	expectRecorded(mockMetrics, "get_brand", "error")

	decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)

	result, err := decorator.ListBrands(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, rules, result)

	_, err = decorator.GetBrand(context.Background(), cardDomain.Brand("JCB"))
	assert.ErrorIs(t, err, cardDomain.ErrBrandNotFound)

	mockMetrics.AssertExpectations(t)
}
