package routefile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	v10 "github.com/go-playground/validator/v10"
	"github.com/vitalvas/waypoint/pattern"
)

var validate = sync.OnceValue(func() *v10.Validate {
	v := v10.New(v10.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	if err := v.RegisterValidation("routepattern", validatePattern); err != nil {
		panic(fmt.Sprintf("routefile: register routepattern: %v", err))
	}

	return v
})

func validatePattern(fl v10.FieldLevel) bool {
	return pattern.Validate(fl.Field().String()) == nil
}

// Validate checks f against its validate tags. Route patterns must be legal
// patterns and every route must name a component.
func (f *File) Validate() error {
	err := validate().Struct(f)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func describe(fe v10.FieldError) string {
	field := fe.Namespace()
	if ns := strings.SplitN(field, ".", 2); len(ns) == 2 {
		field = ns[1]
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "routepattern":
		if err := pattern.Validate(fmt.Sprint(fe.Value())); err != nil {
			return fmt.Sprintf("%s: %v", field, err)
		}
		return field + " is not a valid route pattern"
	}

	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}

	return fmt.Sprintf("%s: got %v, want %s", field, fe.Value(), rule)
}
