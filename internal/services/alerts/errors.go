package alerts

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("invalid alert")

// Fields reported by ValidationError.
const (
	FieldEmail       = "email"
	FieldProduct     = "product"
	FieldTargetPrice = "targetPrice"
)

// ValidationError names the first alert field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrValidation) hold for every validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
