package types

// RecordState classifies a metadata record against its owning package
// artifact.
type RecordState string

const (
	// RecordMissing: no metadata object exists for the artifact.
	RecordMissing RecordState = "missing"
	// RecordStale: the metadata object exists but its last-modified tag is
	// absent or differs from the artifact's current value.
	RecordStale RecordState = "stale"
	// RecordValid: the metadata object exists and its tag matches.
	RecordValid RecordState = "valid"
)
