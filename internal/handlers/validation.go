package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/garage_invoice_app/internal/apperrors"
	"github.com/SscSPs/garage_invoice_app/internal/dto"
	"github.com/SscSPs/garage_invoice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators teaches gin's validator the JSON field names and the
// isodate tag. It is safe to call more than once and panics if the engine
// cannot take the registrations, since every invoice bind depends on them.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("handlers: unexpected validator engine %T", binding.Validator.Engine()))
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := dto.ParseDate(fl.Field().String())
			return err == nil
		})
		if err != nil {
			panic(fmt.Sprintf("handlers: register isodate validation: %v", err))
		}
	})
}

// fieldMessages maps "<json field>.<failed tag>" to the message shown to clients.
var fieldMessages = map[string]string{
	"username.required":      "Username is required",
	"username.min":           "Username is required",
	"email.required":         "Email is required",
	"email.email":            "Invalid email address",
	"password.required":      "Password is required",
	"password.min":           "Password is required",
	"name.required":          "Name is required",
	"name.min":               "Name is required",
	"invoiceNumber.required": "Invoice number is required",
	"invoiceNumber.min":      "Invoice number cannot be empty",
	"dueDate.required":       "Due date is required",
	"dueDate.isodate":        "Due date must be a valid date",
	"status.oneof":           "Invalid status",
	"customerId.required":    "Customer ID is required",
	"customerId.mongodb":     "Invalid customer ID",
}

// typeMessages covers JSON values of the wrong type, keyed by field.
var typeMessages = map[string]string{
	"address":      "Address must be an object",
	"customFields": "Custom fields must be an object of strings",
	"lineItems":    "Line items must be an array",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// bindingError converts a ShouldBindJSON failure into a 400 AppError.
func bindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperrors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return apperrors.NewValidationError(fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return apperrors.NewAppError(http.StatusBadRequest, "Request body must be a JSON object", apperrors.ErrValidation)
		}
		field := typeErr.Field
		if root, _, found := strings.Cut(field, "."); found && typeMessages[root] != "" {
			field = root
		}
		msg, ok := typeMessages[field]
		if !ok {
			msg = fmt.Sprintf("%s has an invalid type", field)
		}
		return apperrors.NewFieldError(field, msg)
	}

	return apperrors.NewAppError(http.StatusBadRequest, "Invalid request body", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
}

// bindJSON decodes and validates the body into req, writing a 400 on failure.
// An empty body is validated as an empty object so required fields are reported.
func bindJSON(c *gin.Context, req any) bool {
	registerValidators()

	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request body", slog.String("error", err.Error()))
		respondError(c, bindingError(err))
		return false
	}
	return true
}
