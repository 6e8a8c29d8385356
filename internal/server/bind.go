package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/alnah/go-linkedinify"
)

// requestError is a client error with its HTTP status.
type requestError struct {
	status  int
	field   string
	message string
}

func (e *requestError) Error() string { return e.message }

// validation holds a validator with English messages keyed by JSON names.
type validation struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newValidation() *validation {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = entranslations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("profile", func(fl validator.FieldLevel) bool {
		_, err := linkedinify.ParseProfile(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterTranslation("profile", trans,
		func(ut ut.Translator) error {
			return ut.Add("profile", "{0} must be linkedin or twitter", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("profile", fe.Field())
			return msg
		},
	)

	return &validation{validate: v, translator: trans}
}

// check validates dst and returns the first failing field.
func (v *validation) check(dst any) error {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &requestError{
			status:  http.StatusBadRequest,
			field:   fe.Field(),
			message: fe.Translate(v.translator),
		}
	}
	return &requestError{status: http.StatusBadRequest, message: err.Error()}
}

// decodeJSON reads one JSON object from the body into dst and validates it.
// Unknown fields and trailing data are rejected.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return &requestError{
				status:  http.StatusRequestEntityTooLarge,
				message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit),
			}
		case errors.Is(err, io.EOF):
			return &requestError{status: http.StatusBadRequest, message: "empty body"}
		default:
			return &requestError{status: http.StatusBadRequest, message: "invalid JSON: " + err.Error()}
		}
	}
	if dec.More() {
		return &requestError{status: http.StatusBadRequest, message: "unexpected trailing data"}
	}

	return s.validation.check(dst)
}
