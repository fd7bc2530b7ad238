package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/vote-monitor/models"
)

// requestField is the key malformed request bodies are reported under.
const requestField = "request"

// newValidator returns a validator reporting fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// decodeAndValidate decodes the JSON body of r into dst and validates it.
// An empty body decodes as an empty object. It returns nil when dst is valid.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) models.ValidationErrors {
	errs := models.ValidationErrors{}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		errs.Add(requestField, "The request body is not valid JSON.")
		return errs
	}

	err := h.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs.Add(requestField, err.Error())
		return errs
	}

	for _, fe := range fieldErrors {
		errs.Add(fe.Field(), validationMessage(fe))
	}
	return errs
}

func validationMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fmt.Sprintf("The %s field is required.", fe.Field())
	}
	return fmt.Sprintf("The field %s is invalid.", fe.Field())
}
