package models

import "github.com/cockroachdb/errors"

// ErrFieldRequired marks a payload that is missing a mandatory field.
var ErrFieldRequired = errors.New("field required")

func missingField(name string) error {
	return errors.Wrapf(ErrFieldRequired, "%s", name)
}
