package services

import (
	"context"

	"github.com/SscSPs/cheque_amount_app/internal/core/domain"
)

// ConversionReaderSvc defines the conversion operations offered to the UI.
type ConversionReaderSvc interface {
	// Convert turns one raw input into its cheque text. Rejected inputs are
	// not errors; they come back as a Conversion carrying the rejection outcome.
	Convert(ctx context.Context, raw string) (*domain.Conversion, error)

	// ConvertBatch converts several inputs in order.
	ConvertBatch(ctx context.Context, raws []string) ([]domain.Conversion, error)

	// Messages returns the fixed texts keyed by outcome.
	Messages(ctx context.Context) map[domain.Outcome]string
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionReaderSvc
}
