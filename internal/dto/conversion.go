package dto

import (
	"sort"

	"github.com/SscSPs/cheque_amount_app/internal/core/domain"
)

// MaxAmountInputLength bounds the raw text accepted for a single amount.
const MaxAmountInputLength = 64

// ConvertRequest defines the body of a single conversion.
// An empty or missing amount is valid and yields the "please enter" prompt.
type ConvertRequest struct {
	Amount string `json:"amount" binding:"max=64"`
}

// ConvertQuery defines the query parameters of a single conversion.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"max=64"`
}

// BatchConvertRequest defines the body of a batch conversion.
type BatchConvertRequest struct {
	Amounts []string `json:"amounts" binding:"required,min=1,dive,max=64"`
}

// ConversionResponse defines the data returned for one conversion.
type ConversionResponse struct {
	Input    string `json:"input"`
	Amount   string `json:"amount,omitempty"`
	Text     string `json:"text"`
	Outcome  string `json:"outcome"`
	IsError  bool   `json:"isError"`
	Copyable bool   `json:"copyable"`
}

// BatchConversionResponse defines the data returned for a batch conversion.
type BatchConversionResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
	Count       int                  `json:"count"`
}

// MessageResponse pairs an outcome with its fixed text.
type MessageResponse struct {
	Outcome string `json:"outcome"`
	Text    string `json:"text"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Input:    c.Input,
		Amount:   c.Amount,
		Text:     c.Text,
		Outcome:  string(c.Outcome),
		IsError:  c.IsError,
		Copyable: c.Copyable,
	}
}

// ToBatchConversionResponse converts a slice of domain.Conversion to the batch DTO
func ToBatchConversionResponse(conversions []domain.Conversion) BatchConversionResponse {
	res := make([]ConversionResponse, len(conversions))
	for i := range conversions {
		res[i] = ToConversionResponse(&conversions[i])
	}
	return BatchConversionResponse{Conversions: res, Count: len(res)}
}

// ToMessageResponses converts the outcome text table into a list sorted by outcome.
func ToMessageResponses(messages map[domain.Outcome]string) []MessageResponse {
	res := make([]MessageResponse, 0, len(messages))
	for outcome, text := range messages {
		res = append(res, MessageResponse{Outcome: string(outcome), Text: text})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Outcome < res[j].Outcome })
	return res
}
