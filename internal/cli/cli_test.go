package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("boom"), 2},
		{errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("boom"), 3},
		{errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("boom"), 4},
		{errbuilder.New().WithCode(errbuilder.CodeUnavailable).WithMsg("boom"), 5},
		{errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("boom"), 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, exitCodeForError(tc.err))
	}
	assert.Equal(t, 1, exitCodeForError(errors.New("plain error")))
}

func TestErrorMessagePrefersBuilderMsg(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg("failed to list container").
		WithCause(errors.New("dial tcp: timeout"))
	assert.Equal(t, "failed to list container", errorMessage(err))
	assert.Equal(t, "plain", errorMessage(errors.New("plain")))
}

func TestRootCommandHasAllSubcommands(t *testing.T) {
	root := newRootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"run", "check", "index", "inspect", "serve"} {
		assert.Contains(t, names, want)
	}
}
