package script

import (
	"github.com/ezrec/ndcpu/translate"
)

var f = translate.From

// ErrScript is a failure while running a script.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrSetValue is an argument to set() other than 0, 1 or "x".
type ErrSetValue string

func (err ErrSetValue) Error() string {
	return f("set: %v is not 0, 1 or \"x\"", string(err))
}
