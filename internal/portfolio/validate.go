package portfolio

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var htmlIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func entryValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// The registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("htmlid", func(fl validator.FieldLevel) bool {
			return htmlIDPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Validate checks every entry for missing required fields and makes sure
// no two entries share an ID.
func Validate(entries []Entry) error {
	v := entryValidator()
	seen := make(map[string]int, len(entries))

	var errs []error
	for i, entry := range entries {
		if err := v.Struct(entry); err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%q): %w", i, entry.ID, flatten(err)))
		}
		if prev, ok := seen[entry.ID]; ok && entry.ID != "" {
			errs = append(errs, fmt.Errorf("entry %d: duplicate id %q (first used by entry %d)", i, entry.ID, prev))
			continue
		}
		seen[entry.ID] = i
	}
	return errors.Join(errs...)
}

// flatten turns validator field errors into a single readable error.
func flatten(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, ", "))
}
