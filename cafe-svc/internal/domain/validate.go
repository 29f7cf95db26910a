package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError locates one failed constraint. Loc starts with "body" and
// continues with JSON field names and list indexes.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

func (f FieldError) Error() string {
	parts := make([]string, 0, len(f.Loc))
	for _, p := range f.Loc {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ".") + ": " + f.Msg
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	s := make([]string, 0, len(v))
	for _, err := range v {
		s = append(s, err.Error())
	}
	return strings.Join(s, ", ")
}

// Fields lists the top-level body fields that failed, in order.
func (v ValidationErrors) Fields() []string {
	var fields []string
	for _, err := range v {
		if len(err.Loc) > 1 {
			fields = append(fields, fmt.Sprint(err.Loc[1]))
		}
	}
	return fields
}

func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(valErrs))
	for _, valErr := range valErrs {
		errs = append(errs, buildFieldError(valErr))
	}
	return errs
}

func buildFieldError(f validator.FieldError) FieldError {
	loc := namespaceToLoc(f.Namespace())
	switch f.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	case "min", "gte":
		return FieldError{Loc: loc, Msg: "ensure this value is greater than or equal to " + f.Param(), Type: "value_error.number.not_ge"}
	case "max", "lte":
		return FieldError{Loc: loc, Msg: "ensure this value is less than or equal to " + f.Param(), Type: "value_error.number.not_le"}
	default:
		return FieldError{Loc: loc, Msg: "invalid value", Type: "value_error." + f.Tag()}
	}
}

// namespaceToLoc turns "CheckoutRequest.items[0].price" into
// ["body", "items", 0, "price"]. The leading struct name is dropped.
func namespaceToLoc(ns string) []any {
	loc := []any{"body"}
	segments := strings.Split(ns, ".")
	if len(segments) > 0 {
		segments = segments[1:]
	}
	for _, seg := range segments {
		for seg != "" {
			open := strings.IndexByte(seg, '[')
			if open < 0 {
				loc = append(loc, seg)
				break
			}
			if open > 0 {
				loc = append(loc, seg[:open])
			}
			end := strings.IndexByte(seg[open:], ']')
			if end < 0 {
				loc = append(loc, seg[open:])
				break
			}
			raw := seg[open+1 : open+end]
			if idx, err := strconv.Atoi(raw); err == nil {
				loc = append(loc, idx)
			} else {
				loc = append(loc, raw)
			}
			seg = seg[open+end+1:]
		}
	}
	return loc
}

// DecodeError reports a request body that could not be decoded as a
// validation failure, pointing at the offending field when known.
func DecodeError(err error) ValidationErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		loc := []any{"body"}
		for _, p := range strings.Split(typeErr.Field, ".") {
			loc = append(loc, p)
		}
		return ValidationErrors{{
			Loc:  loc,
			Msg:  "value is not a valid " + typeErr.Type.String(),
			Type: "type_error",
		}}
	}
	return ValidationErrors{{
		Loc:  []any{"body"},
		Msg:  err.Error(),
		Type: "value_error.jsondecode",
	}}
}
