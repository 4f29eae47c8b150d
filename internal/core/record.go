package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"apt-repo-function/internal/types"
)

// ValidateControlInfo asserts the internal invariants of extracted package
// information before it is written anywhere. These can only fail on a bug in
// the digest code, never on external input: malformed archives (including an
// empty control file) are rejected with CorruptPackageError during
// extraction, before this runs.
func ValidateControlInfo(ctx context.Context, info types.ControlInfo) {
	assert.Assert(ctx, len(info.MD5) == 32, "md5 digest must be 32 hex characters")
	assert.Assert(ctx, len(info.SHA1) == 40, "sha1 digest must be 40 hex characters")
	assert.Assert(ctx, len(info.SHA256) == 64, "sha256 digest must be 64 hex characters")
	assert.Assert(ctx, info.Size >= 0, "package size must not be negative")
}

// FormatRecord renders one metadata record: the control stanza with trailing
// whitespace trimmed, the synthesized repository fields, then a blank line.
// The trailing blank line terminates the stanza so that concatenated records
// form a valid multi-stanza Packages file.
func FormatRecord(info types.ControlInfo, filename string) []byte {
	var builder strings.Builder
	builder.WriteString(strings.TrimRight(info.Control, " \t\r\n"))
	builder.WriteString("\n")
	fmt.Fprintf(&builder, "Filename: %s\n", filename)
	fmt.Fprintf(&builder, "MD5sum: %s\n", info.MD5)
	fmt.Fprintf(&builder, "SHA1: %s\n", info.SHA1)
	fmt.Fprintf(&builder, "SHA256: %s\n", info.SHA256)
	fmt.Fprintf(&builder, "Size: %d\n", info.Size)
	builder.WriteString("\n")
	return []byte(builder.String())
}

// ParsePackagesIndex scans a Packages file into its stanzas, keeping the
// fields the inspect report uses. Unknown fields are skipped; stanzas without
// a Package field are ignored.
func ParsePackagesIndex(r io.Reader) ([]types.IndexEntry, error) {
	var entries []types.IndexEntry
	var current types.IndexEntry
	flush := func() {
		if current.Package != "" {
			entries = append(entries, current)
		}
		current = types.IndexEntry{}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		switch {
		case strings.HasPrefix(line, "Package:"):
			current.Package = strings.TrimSpace(strings.TrimPrefix(line, "Package:"))
		case strings.HasPrefix(line, "Version:"):
			current.Version = strings.TrimSpace(strings.TrimPrefix(line, "Version:"))
		case strings.HasPrefix(line, "Filename:"):
			current.Filename = strings.TrimSpace(strings.TrimPrefix(line, "Filename:"))
		case strings.HasPrefix(line, "Size:"):
			size, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "Size:")), 10, 64)
			if err == nil {
				current.Size = size
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read packages index").
			WithCause(err)
	}
	flush()
	return entries, nil
}
