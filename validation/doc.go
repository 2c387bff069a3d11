// Package validation provides input validation utilities for swapkit
// configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Family  string `validate:"required"`
//	    BaseURL string `validate:"omitempty,url"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(name != "", "name", "name is required")
//	err := v.Error()
package validation
