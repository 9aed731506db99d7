// Package validation provides input validation utilities.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for configuration types.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Target   time.Duration `mapstructure:"target" validate:"required,gt=0"`
//	    Strategy string        `mapstructure:"strategy" validate:"oneof=pid threshold"`
//	}
//	err := validation.ValidateStruct(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("stream_id", id).PositiveDuration("target", target)
//	err := v.Validate()
package validation
