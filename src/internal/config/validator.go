package config

import (
	"errors"
	"net"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/zte-goform/src/internal/utils"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("base_url_or_empty", validateBaseURLOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("listen_addr", validateListenAddr); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.Device == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "device",
			Message:   "configuration must contain 'device' section",
		})
	} else {
		if err := validate.Struct(c.Device); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "device")...)
		}
		validationErrors = append(validationErrors, c.validatePassword()...)
	}

	if c.API == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "api",
			Message:   "configuration must contain 'api' section",
		})
	} else if err := validate.Struct(c.API); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "api")...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validatePassword() ValidationErrors {
	var validationErrors ValidationErrors

	if c.Device.Password != "" && c.Device.PasswordFile != "" {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "device.password",
			Message:   "can only specify one of: password, password_file",
		})
	}

	if c.Device.PasswordFile != "" {
		path := utils.GetAbsolutePath(c.Device.PasswordFile, c.GetConfigDir())
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "device.password_file",
				Message:   "file does not exist: " + path,
			})
		}
	}

	return validationErrors
}

// Custom validator: http(s) URL with a host, or empty
func validateBaseURLOrEmpty(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Custom validator: host:port with a numeric port
func validateListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 0 && n <= 65535
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
