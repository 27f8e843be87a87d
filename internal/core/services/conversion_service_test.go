package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/cheque_amount_app/internal/apperrors"
	"github.com/SscSPs/cheque_amount_app/internal/core/domain"
	portssvc "github.com/SscSPs/cheque_amount_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_amount_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	service portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.service = services.NewConversionService(services.WithMaxBatchSize(3))
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestConvert_Success() {
	conversion, err := suite.service.Convert(context.Background(), "1,234.5")

	suite.Require().NoError(err)
	suite.Require().NotNil(conversion)
	suite.Equal("1,234.5", conversion.Input)
	suite.Equal("1234.50", conversion.Amount)
	suite.Equal("壹仟貳佰叁拾肆圓伍角", conversion.Text)
	suite.Equal(domain.OutcomeConverted, conversion.Outcome)
	suite.False(conversion.IsError)
	suite.True(conversion.Copyable)
}

func (suite *ConversionServiceTestSuite) TestConvert_Zero() {
	conversion, err := suite.service.Convert(context.Background(), "0.00")

	suite.Require().NoError(err)
	suite.Equal("零圓整", conversion.Text)
	suite.Equal("0.00", conversion.Amount)
	suite.Equal(domain.OutcomeZero, conversion.Outcome)
	suite.True(conversion.Copyable)
}

func (suite *ConversionServiceTestSuite) TestConvert_Rejections() {
	cases := map[string]struct {
		outcome  domain.Outcome
		isError  bool
		copyable bool
	}{
		"":              {outcome: domain.OutcomeEmptyInput, isError: false, copyable: false},
		"abc":           {outcome: domain.OutcomeInvalidFormat, isError: true, copyable: false},
		"-5":            {outcome: domain.OutcomeNegative, isError: true, copyable: false},
		"1000000000000": {outcome: domain.OutcomeTooLarge, isError: true, copyable: false},
	}

	for input, want := range cases {
		conversion, err := suite.service.Convert(context.Background(), input)
		suite.Require().NoError(err, input)
		suite.Equal(want.outcome, conversion.Outcome, input)
		suite.Equal(want.isError, conversion.IsError, input)
		suite.Equal(want.copyable, conversion.Copyable, input)
		suite.Empty(conversion.Amount, input)
	}
}

func (suite *ConversionServiceTestSuite) TestConvert_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conversion, err := suite.service.Convert(ctx, "1")

	suite.Nil(conversion)
	suite.ErrorIs(err, context.Canceled)
}

func (suite *ConversionServiceTestSuite) TestConvertBatch_PreservesOrder() {
	conversions, err := suite.service.ConvertBatch(context.Background(), []string{"10001", "x", "100000000"})

	suite.Require().NoError(err)
	suite.Require().Len(conversions, 3)
	suite.Equal("壹萬零壹圓整", conversions[0].Text)
	suite.Equal(domain.OutcomeInvalidFormat, conversions[1].Outcome)
	suite.Equal("壹億圓整", conversions[2].Text)
}

func (suite *ConversionServiceTestSuite) TestConvertBatch_Empty() {
	conversions, err := suite.service.ConvertBatch(context.Background(), nil)

	suite.Nil(conversions)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ConversionServiceTestSuite) TestConvertBatch_TooMany() {
	conversions, err := suite.service.ConvertBatch(context.Background(), []string{"1", "2", "3", "4"})

	suite.Nil(conversions)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "exceeds the limit of 3")
}

func (suite *ConversionServiceTestSuite) TestConvertBatch_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conversions, err := suite.service.ConvertBatch(ctx, []string{"1"})

	suite.Nil(conversions)
	suite.ErrorIs(err, context.Canceled)
}

func (suite *ConversionServiceTestSuite) TestMessages() {
	messages := suite.service.Messages(context.Background())

	suite.Equal("請輸入金額", messages[domain.OutcomeEmptyInput])
	suite.Equal("金額過大（最大支持 999,999,999,999.99）", messages[domain.OutcomeTooLarge])
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}

func TestNewConversionService_DefaultBatchSize(t *testing.T) {
	svc := services.NewConversionService(services.WithMaxBatchSize(0))
	raws := make([]string, services.DefaultMaxBatchSize)
	for i := range raws {
		raws[i] = "1"
	}

	conversions, err := svc.ConvertBatch(context.Background(), raws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conversions) != services.DefaultMaxBatchSize {
		t.Fatalf("expected %d conversions, got %d", services.DefaultMaxBatchSize, len(conversions))
	}
}
