package services

import (
	portssvc "github.com/SscSPs/cheque_amount_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_amount_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(WithMaxBatchSize(cfg.MaxBatchSize)),
	}
}
