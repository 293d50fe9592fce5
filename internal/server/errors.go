package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	orderdomain "github.com/marketbase/commerce/internal/order/domain"
	productdomain "github.com/marketbase/commerce/internal/product/domain"
	userdomain "github.com/marketbase/commerce/internal/user/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware renders the last collected error once the handler
// chain finishes without writing a response body.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// bindingError converts a gin binding failure into the per-field validation
// list, so malformed bodies report every invalid field at once.
func bindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := make([]ValidationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			field := snakeCase(fe.Field())
			out = append(out, ValidationError{
				Field:   field,
				Code:    fe.Tag(),
				Message: fieldErrorMessage(field, fe),
			})
		}
		return &ValidationErrors{Errors: out}
	}
	return invalidRequestError()
}

func fieldErrorMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	if msg, ok := conflictMessage(err); ok {
		return http.StatusBadRequest, errorPayload{
			Type:    "conflict",
			Message: msg,
		}
	}

	if msg, ok := notFoundMessage(err); ok {
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: msg,
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, userdomain.ErrInvalidName),
		errors.Is(err, userdomain.ErrInvalidAddress),
		errors.Is(err, userdomain.ErrInvalidEmail),
		errors.Is(err, userdomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, orderdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func conflictMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, userdomain.ErrEmailTaken):
		return "user with this email already exists", true
	case errors.Is(err, userdomain.ErrHasOrders):
		return "user still has orders", true
	case errors.Is(err, productdomain.ErrNameTaken):
		return "product with this name already exists", true
	case errors.Is(err, orderdomain.ErrProductInOrder):
		return "product is already in the order", true
	default:
		return "", false
	}
}

func notFoundMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, userdomain.ErrNotFound):
		return "user not found", true
	case errors.Is(err, productdomain.ErrNotFound):
		return "product not found", true
	case errors.Is(err, orderdomain.ErrNotFound):
		return "order not found", true
	case errors.Is(err, orderdomain.ErrProductNotInOrder):
		return "product is not in the order", true
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "not found", true
	default:
		return "", false
	}
}

func validationErrorField(code string) string {
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}
