// Package i18n provides internationalization support for the cargo pack service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that could not be decoded.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyValidationItems indicates a missing or empty item list.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationItem indicates an item with a non-positive dimension, weight or quantity.
	ErrKeyValidationItem = "error.validation.item"
	// ErrKeyValidationContainer indicates a missing or malformed container.
	ErrKeyValidationContainer = "error.validation.container"
	// ErrKeyTooManyInstances indicates the expanded instance count exceeds the limit.
	ErrKeyTooManyInstances = "error.validation.too_many_instances"
	// ErrKeyUnknownAlgorithm indicates an unrecognised algorithm name.
	ErrKeyUnknownAlgorithm = "error.unknown_algorithm"
	// ErrKeyUnknownContainer indicates a container code missing from the catalogue.
	ErrKeyUnknownContainer = "error.unknown_container"
	// ErrKeyRunHistoryUnavailable indicates run history storage is disabled or down.
	ErrKeyRunHistoryUnavailable = "error.run_history_unavailable"
	// ErrKeyOptimizationFailed is sent on a progress stream when a run fails.
	ErrKeyOptimizationFailed = "error.optimization_failed"
	// ErrKeyTimeout indicates the request deadline passed.
	ErrKeyTimeout = "error.timeout"
)

// Informational message keys.
const (
	MsgKeyContainerFits         = "message.container_fits"
	MsgKeyNoContainerFits       = "message.no_container_fits"
	MsgKeyOptimizationStarted   = "message.optimization_started"
	MsgKeyOptimizationCompleted = "message.optimization_completed"
)
