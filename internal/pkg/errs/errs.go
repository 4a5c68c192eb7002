package errs

import (
	"errors"
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

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches markErr so errors.Is(result, markErr) holds while the
// original chain stays intact for logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is also matches marks attached with Mark, which the standard library
// errors.Is does not see. The standard walk covers joined errors.
func Is(err, reference error) bool {
	return cr.Is(err, reference) || errors.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

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
