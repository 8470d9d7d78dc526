package cli

import "fmt"

type dateParseError struct {
	field  string
	value  string
	expect string
	err    error
}

func (e dateParseError) Error() string {
	return fmt.Sprintf("invalid %s %q (expected %s)", e.field, e.value, e.expect)
}

func (e dateParseError) Unwrap() error { return e.err }

func errDateParse(field, value, expect string, err error) error {
	return dateParseError{field: field, value: value, expect: expect, err: err}
}
