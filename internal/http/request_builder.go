package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-pack-service/internal/domain/dto"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"github.com/guttosm/cargo-pack-service/internal/middleware"
	"github.com/guttosm/cargo-pack-service/internal/packing"
	"github.com/guttosm/cargo-pack-service/internal/service"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// Validator interface for types that can validate themselves.
type Validator interface {
	Validate() error
}

// BindAndValidate decodes the JSON body into T and validates it if T
// implements Validator. Decoding errors are returned as a *bodyError.
func BindAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, &bodyError{err: err}
	}
	if validator, ok := any(&req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// bodyError marks a request body that could not be decoded.
type bodyError struct {
	err error
}

func (e *bodyError) Error() string { return "invalid request body: " + e.err.Error() }
func (e *bodyError) Unwrap() error { return e.err }

// ResponseBuilder writes the success and error envelopes.
// Envelopes are pooled; gin serializes synchronously so returning them to the
// pool right after writing is safe.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, nil, err)
}

// ErrorWithDetails is Error with field level details attached.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Attached for the error handler middleware to log.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// Fail maps err to a status and message and sends it.
func (b *ResponseBuilder) Fail(err error) {
	status, key, details := classify(err)
	b.ErrorWithDetails(status, key, details, err)
}

// classify maps request, service and packing errors to an HTTP status, an
// i18n message key and optional details.
func classify(err error) (int, string, map[string]string) {
	var body *bodyError
	if errors.As(err, &body) {
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil
	}

	var validation *dto.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, validation.Key, map[string]string{validation.Field: validation.Message}
	}

	switch {
	case errors.Is(err, service.ErrContainerNotFound):
		return http.StatusNotFound, i18n.ErrKeyUnknownContainer, nil
	case errors.Is(err, packing.ErrTooManyInstances):
		return http.StatusBadRequest, i18n.ErrKeyTooManyInstances, map[string]string{"reason": err.Error()}
	case errors.Is(err, packing.ErrUnknownAlgorithm):
		return http.StatusBadRequest, i18n.ErrKeyUnknownAlgorithm, nil
	case errors.Is(err, packing.ErrInvalidInput):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest, map[string]string{"reason": err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout, nil
	case errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, i18n.ErrKeyOptimizationFailed, nil
	default:
		return http.StatusInternalServerError, i18n.ErrKeyOptimizationFailed, nil
	}
}
