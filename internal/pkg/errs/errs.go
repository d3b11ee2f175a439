package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// NewMarked creates a sentinel that also matches the given taxonomy error.
func NewMarked(msg string, kind error) error {
	return cr.Mark(cr.NewWithDepth(1, msg), kind)
}

func IsValidation(err error) bool       { return cr.Is(err, ErrValidation) }
func IsNotFound(err error) bool         { return cr.Is(err, ErrNotFound) }
func IsStoreUnavailable(err error) bool { return cr.Is(err, ErrStoreUnavailable) }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
