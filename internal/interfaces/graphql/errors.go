package graphql

import (
	"fmt"

	"noticeboard/internal/shared/errors"
	"noticeboard/internal/shared/logger"
)

// GraphQL extension codes carried in errors[].extensions.code.
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// APIError is the only error shape resolvers hand to the GraphQL executor.
// Its extensions end up in the response next to the message.
type APIError struct {
	Message string
	Code    string
	Details string
}

func (e *APIError) Error() string {
	return e.Message
}

// Extensions implements gqlerrors.ExtendedError.
func (e *APIError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if e.Details != "" {
		ext["details"] = e.Details
	}
	return ext
}

// ErrorTranslator turns resolver failures into APIErrors. Each failure is
// logged exactly once, here.
type ErrorTranslator struct {
	logger logger.Interface
}

func NewErrorTranslator(log logger.Interface) *ErrorTranslator {
	return &ErrorTranslator{logger: log}
}

// Translate maps err raised by operation (a field of operationType, e.g.
// "Mutation") to an APIError:
//   - storage not-found becomes NOT_FOUND "<operation> not found"
//   - an AppError keeps its message and maps its type to a code
//   - anything else becomes an opaque "<operationType> <operation> failed"
func (t *ErrorTranslator) Translate(operationType, operation string, err error) error {
	if err == nil {
		return nil
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		t.logger.Warnw("graphql operation rejected",
			"operation_type", operationType,
			"operation", operation,
			"error", err)
		return &APIError{
			Message: appErr.Message,
			Code:    codeFor(appErr.Type),
			Details: clientDetails(appErr),
		}
	}

	t.logger.Errorw("graphql operation failed",
		"operation_type", operationType,
		"operation", operation,
		"error", err)

	if errors.IsRecordNotFound(err) {
		return &APIError{
			Message: fmt.Sprintf("%s not found", operation),
			Code:    CodeNotFound,
		}
	}

	return &APIError{
		Message: fmt.Sprintf("%s %s failed", operationType, operation),
		Code:    CodeInternalServerError,
	}
}

func codeFor(t errors.ErrorType) string {
	switch t {
	case errors.ErrorTypeValidation:
		return CodeBadRequest
	case errors.ErrorTypeNotFound:
		return CodeNotFound
	case errors.ErrorTypeConflict:
		return CodeConflict
	default:
		return CodeInternalServerError
	}
}

// clientDetails only exposes details of errors caused by the caller.
func clientDetails(appErr *errors.AppError) string {
	switch appErr.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeNotFound, errors.ErrorTypeConflict:
		return appErr.Details
	default:
		return ""
	}
}
