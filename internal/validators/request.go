// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/MKhiriev/go-mesto/internal/errs"
	"github.com/MKhiriev/go-mesto/internal/utils"
	"github.com/MKhiriev/go-mesto/models"
	"github.com/go-playground/validator/v10"
)

// Custom struct tags registered on top of the go-playground built-ins.
const (
	// TagWebLink accepts absolute http or https URLs with a host.
	TagWebLink = "weblink"
	// TagObjectID accepts exactly 24 hexadecimal characters.
	TagObjectID = "objectid"
)

// RequestValidator validates request models by their `validate` struct tags
// and path identifiers of type [models.ObjectID].
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the custom
// weblink and objectid rules registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagWebLink, isWebLink)
	_ = v.RegisterValidation(TagObjectID, func(fl validator.FieldLevel) bool {
		return utils.IsObjectID(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj. A [models.ObjectID] (or a slice of them) is checked
// for the identifier format; pointers to structs and structs are checked
// by their tags, restricted to fields when any are given.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	const op = "validators.Validate"

	switch value := obj.(type) {
	case models.ObjectID:
		return validateObjectID(op, value)
	case []models.ObjectID:
		for _, id := range value {
			if err := validateObjectID(op, id); err != nil {
				return err
			}
		}
		return nil
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return errs.E(errs.KindInvalidData, op, errors.New("nil request"))
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs.E(errs.KindInternal, op, fmt.Errorf("%w: %T", ErrUnsupportedType, obj))
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return errs.E(errs.KindInternal, op, err)
	}

	return errs.E(errs.KindInvalidData, op, err)
}

func validateObjectID(op string, id models.ObjectID) error {
	if !utils.IsObjectID(string(id)) {
		return errs.E(errs.KindInvalidData, op, fmt.Errorf("%w: %q", ErrInvalidObjectID, string(id)))
	}
	return nil
}

func isWebLink(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
