// Package errutil combines errors from independent steps, such as the
// cleanups run when ked exits.
package errutil

import "strings"

// Multi returns nil if all errs are nil, and the only non-nil error if there
// is one. Otherwise it returns an error that lists every message and unwraps
// to every error. Errors from Multi are flattened rather than nested.
func Multi(errs ...error) error {
	var all multiError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case multiError:
			all = append(all, err...)
		default:
			all = append(all, err)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, err := range me {
		msgs[i] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

func (me multiError) Unwrap() []error { return me }
