package core

import (
	"errors"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const corruptPackageMsg = "corrupt package archive"

// CorruptPackageError builds the error used for any artifact that fails to
// parse as a Debian package archive. It is scoped to that one artifact: the
// scanner logs it and moves on instead of aborting the pass.
func CorruptPackageError(detail string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(corruptPackageMsg + ": " + detail)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// IsCorruptPackage reports whether err was produced by CorruptPackageError.
func IsCorruptPackage(err error) bool {
	var builder *errbuilder.ErrBuilder
	if !errors.As(err, &builder) {
		return false
	}
	return strings.HasPrefix(builder.Msg, corruptPackageMsg)
}
