package goform

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
)

// Keys and field names end up in a comma-joined query or form body; anything
// outside this set would change the request's meaning.
var keyRegexp = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("goform_key", validateGoformKey); err != nil {
		panic(err)
	}
}

func validateGoformKey(fl validator.FieldLevel) bool {
	return keyRegexp.MatchString(fl.Field().String())
}

// ValidateKeys rejects empty key sequences and keys that cannot be sent as-is.
func ValidateKeys(keys []string) error {
	if err := validate.Var(keys, "required,min=1,dive,goform_key"); err != nil {
		return errors.NewValidationError("invalid query keys", err)
	}
	return nil
}

// ValidateFields rejects empty payloads, malformed field names, and payloads
// without a goformId.
func ValidateFields(fields Fields) error {
	if err := validate.Var(map[string]string(fields), "required,min=1,dive,keys,goform_key,endkeys"); err != nil {
		return errors.NewValidationError("invalid command payload", err)
	}
	if fields[FieldGoformID] == "" {
		return errors.NewValidationError("command payload must contain "+FieldGoformID, nil)
	}
	return nil
}
