package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attributes err to the named attribute of a validated value. Names
// follow Go field naming, with dots for nested values, for example Recipient
// or Token.MetadataURI. The description is formatted with args when any are
// given. A nil err yields nil.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldErr{name: name, desc: description, cause: err}
}

// AppendField adds err, attributed to the named field, to errs. Validation
// methods chain it once per attribute.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

// FieldErrors returns every error within err that was attributed to the named
// field. Errors combined with Append are searched one by one.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		switch e := err.(type) {
		case *fieldErr:
			if e.name == name {
				return append(found, e)
			}
		case unpacker:
			for _, inner := range e.Unpack() {
				found = append(found, FieldErrors(inner, name)...)
			}
			return found
		}

		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}

type fieldErr struct {
	name  string
	desc  string
	cause error
}

func (e *fieldErr) Error() string {
	prefix := fmt.Sprintf("field %q: ", e.name)
	if e.desc != "" {
		prefix += e.desc + ": "
	}
	return prefix + e.cause.Error()
}

func (e *fieldErr) Cause() error {
	return e.cause
}
