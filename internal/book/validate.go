package book

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks in against the book rules. The missing-name rule is
// reported ahead of the page rule when both fail. A negative page field
// falls under the page rule: readPage must lie within [0, pageCount].
func Validate(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.StructField()] = true
	}

	switch {
	case failed["Name"]:
		return ErrMissingName
	case failed["ReadPage"], failed["PageCount"]:
		return ErrReadPageExceedsPageCount
	default:
		return err
	}
}
