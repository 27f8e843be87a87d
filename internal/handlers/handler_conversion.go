package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/cheque_amount_app/internal/apperrors"
	portssvc "github.com/SscSPs/cheque_amount_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_amount_app/internal/dto"
	"github.com/SscSPs/cheque_amount_app/internal/middleware"
	"github.com/SscSPs/cheque_amount_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests related to amount conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
	posthogClient     *utils.PosthogClientWrapper
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade, posthogClient *utils.PosthogClientWrapper) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		posthogClient:     posthogClient,
	}
}

// RegisterConversionRoutes registers routes related to amount conversions.
// posthogClient may be nil.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newConversionHandler(conversionService, posthogClient)

	conversions := rg.Group("/conversions")
	{
		conversions.GET("", h.convertQuery)
		conversions.POST("", h.convert)
		conversions.POST("/batch", h.convertBatch)
		conversions.GET("/messages", h.listMessages)
	}
}

// convert godoc
// @Summary Convert an amount to cheque text
// @Description Writes an arabic-numeral amount as the traditional Chinese legal-amount phrase. Rejected inputs return 200 with a rejection outcome and message.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Amount as typed by the user"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to convert amount"
// @Router /conversions [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	h.respondWithConversion(c, logger, req.Amount)
}

// convertQuery godoc
// @Summary Convert an amount to cheque text
// @Description Same as POST /conversions, taking the amount from the query string.
// @Tags conversions
// @Produce  json
// @Param   amount query string false "Amount as typed by the user" MaxLength(64)
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to convert amount"
// @Router /conversions [get]
func (h *conversionHandler) convertQuery(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ConvertQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}
	h.respondWithConversion(c, logger, query.Amount)
}

func (h *conversionHandler) respondWithConversion(c *gin.Context, logger *slog.Logger, raw string) {
	logger.Info("Received request to convert amount", slog.Int("input_length", len(raw)))

	conversion, err := h.conversionService.Convert(c.Request.Context(), raw)
	if err != nil {
		logger.Error("Failed to convert amount in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert amount"})
		return
	}

	if conversion.Outcome.IsRejection() {
		logger.Info("Amount rejected", slog.String("outcome", string(conversion.Outcome)))
		middleware.PosthogEvent(c, h.posthogClient, "amount_rejected", map[string]any{"outcome": string(conversion.Outcome)})
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// convertBatch godoc
// @Summary Convert several amounts
// @Description Converts each amount in order. The batch size is limited by configuration.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversions body dto.BatchConvertRequest true "Amounts as typed by the user"
// @Success 200 {object} dto.BatchConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid input or batch too large"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to convert amounts"
// @Router /conversions/batch [post]
func (h *conversionHandler) convertBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to convert batch", slog.Int("count", len(req.Amounts)))

	conversions, err := h.conversionService.ConvertBatch(c.Request.Context(), req.Amounts)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting batch", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to convert batch in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert amounts"})
		}
		return
	}

	logger.Info("Batch converted successfully", slog.Int("count", len(conversions)))
	c.JSON(http.StatusOK, dto.ToBatchConversionResponse(conversions))
}

// listMessages godoc
// @Summary List fixed outcome texts
// @Description Returns the verbatim texts used for rejected and zero amounts.
// @Tags conversions
// @Produce  json
// @Success 200 {array} dto.MessageResponse
// @Router /conversions/messages [get]
func (h *conversionHandler) listMessages(c *gin.Context) {
	messages := h.conversionService.Messages(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}
