package handlers

import (
	"errors"
	"net/url"
	"reflect"

	"events-server/apperrors"

	"github.com/go-playground/validator/v10"
)

const QUERY_TAG = "query"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report query names ("lat") instead of Go field names ("Lat").
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get(QUERY_TAG)
	})
	return v
}

// SearchEventsArgs are the /api/search query args before coordinate parsing.
type SearchEventsArgs struct {
	Keyword  string `query:"keyword"`
	Distance string `query:"distance" validate:"omitempty,numeric"`
	Category string `query:"category"`
	Lat      string `query:"lat" validate:"required"`
	Lng      string `query:"lng" validate:"required"`
}

type KeywordArgs struct {
	Keyword string `query:"keyword" validate:"required"`
}

type ArtistNameArgs struct {
	Name string `query:"name" validate:"required"`
}

type LocationArgs struct {
	Location string `query:"location" validate:"required"`
}

// bindQuery copies query values into the string fields of dst tagged with
// `query` and validates the result. dst must be a pointer to a struct.
func bindQuery(vals url.Values, dst interface{}) error {
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := rt.Field(i).Tag.Get(QUERY_TAG)
		if name == "" || rt.Field(i).Type.Kind() != reflect.String {
			continue
		}
		if vals.Has(name) {
			rv.Field(i).SetString(vals.Get(name))
		}
	}
	return validateArgs(dst)
}

// validateArgs maps the first validation failure to a *apperrors.ParameterError.
func validateArgs(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return &apperrors.ParameterError{Param: fe.Field(), Err: apperrors.ErrMissingParameter}
	}
	return &apperrors.ParameterError{Param: fe.Field(), Err: apperrors.ErrInvalidParameter}
}
