package utils

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// HandleValidationErrors turns a ReadJSON failure into a 400 response,
// listing the offending fields when the error came from the validator.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, fieldErr.Field())
		}
		JSONError(ctx, http.StatusBadRequest, strings.Join(fields, ", "), "Validation failed")
		return
	}
	JSONError(ctx, http.StatusBadRequest, err.Error(), "Invalid request payload")
}
