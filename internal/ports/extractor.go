package ports

import "apt-repo-function/internal/types"

// ExtractorPort turns the raw bytes of one package artifact into its control
// stanza and digests. The name is only used for error context.
type ExtractorPort interface {
	Extract(name string, payload []byte) (types.ControlInfo, error)
}
