package upstream

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckSchema validates a decoded payload against its validate tags.
// Any violation is reported as ErrSchemaMismatch naming the offending fields.
func CheckSchema(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace())
		}
		return fmt.Errorf("%w: invalid fields %v", ErrSchemaMismatch, fields)
	}
	return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
}
