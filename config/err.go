package config

import (
	"errors"

	"github.com/ezrec/ndcpu/translate"
)

var f = translate.From

var (
	ErrModeConflict = errors.New(f("script and interactive modes are exclusive"))
)

// ErrFile is a configuration file that could not be parsed.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}

// ErrEnv is an environment override with a bad value.
type ErrEnv struct {
	Key   string
	Value string
	Err   error
}

func (err *ErrEnv) Error() string {
	return f("%v=%q: %v", err.Key, err.Value, err.Err)
}

func (err *ErrEnv) Unwrap() error {
	return err.Err
}
