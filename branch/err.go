package branch

import (
	"github.com/ezrec/ndcpu/translate"
)

var f = translate.From

// ErrWidth is returned for a register width outside MinWidth..MaxWidth.
type ErrWidth uint

func (ew ErrWidth) Error() string {
	return f("width %d out of range %d..%d", uint(ew), MinWidth, MaxWidth)
}

// ErrImportLength is returned when imported words do not match the width.
type ErrImportLength struct {
	Width  uint
	Length int
}

func (err *ErrImportLength) Error() string {
	return f("width %d needs %d words, got %d", err.Width, 1<<(err.Width-6), err.Length)
}
