package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cheque_amount_app/internal/apperrors"
	"github.com/SscSPs/cheque_amount_app/internal/core/domain"
	portssvc "github.com/SscSPs/cheque_amount_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_amount_app/internal/utils"
	"github.com/SscSPs/cheque_amount_app/internal/utils/chequetext"
)

// DefaultMaxBatchSize bounds ConvertBatch when no option overrides it.
const DefaultMaxBatchSize = 100

// conversionService implements the ConversionSvcFacade interface
type conversionService struct {
	BaseService
	maxBatchSize int
}

// ConversionServiceOption is a functional option for configuring the conversion service
type ConversionServiceOption func(*conversionService)

// WithMaxBatchSize caps the number of inputs accepted by ConvertBatch.
func WithMaxBatchSize(n int) ConversionServiceOption {
	return func(s *conversionService) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// NewConversionService creates a new conversion service with the provided options
func NewConversionService(options ...ConversionServiceOption) portssvc.ConversionSvcFacade {
	svc := &conversionService{maxBatchSize: DefaultMaxBatchSize}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure conversionService implements the ConversionSvcFacade interface
var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

func (s *conversionService) Convert(ctx context.Context, raw string) (*domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conversion := convert(raw)
	s.LogDebug(ctx, "Converted amount",
		slog.String("input", raw),
		slog.String("outcome", string(conversion.Outcome)))
	return &conversion, nil
}

func (s *conversionService) ConvertBatch(ctx context.Context, raws []string) ([]domain.Conversion, error) {
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w: at least one amount is required", apperrors.ErrValidation)
	}
	if len(raws) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d amounts exceeds the limit of %d", apperrors.ErrValidation, len(raws), s.maxBatchSize)
	}

	conversions := make([]domain.Conversion, 0, len(raws))
	rejected := 0
	for i, raw := range raws {
		if err := ctx.Err(); err != nil {
			s.LogError(ctx, err, "Batch conversion cancelled", slog.Int("completed", i))
			return nil, err
		}
		conversion := convert(raw)
		if conversion.Outcome.IsRejection() {
			rejected++
		}
		conversions = append(conversions, conversion)
	}

	s.LogInfo(ctx, "Converted batch",
		slog.Int("count", len(conversions)),
		slog.Int("rejected", rejected))
	return conversions, nil
}

func (s *conversionService) Messages(ctx context.Context) map[domain.Outcome]string {
	return chequetext.Messages()
}

func convert(raw string) domain.Conversion {
	text, outcome := chequetext.Render(raw)
	conversion := domain.Conversion{
		Input:    raw,
		Text:     text,
		Outcome:  outcome,
		IsError:  chequetext.IsErrorText(text),
		Copyable: chequetext.IsCopyable(text),
	}
	if !outcome.IsRejection() {
		if amount, err := chequetext.Normalize(raw); err == nil {
			conversion.Amount = utils.FormatAmount(amount)
		}
	}
	return conversion
}
