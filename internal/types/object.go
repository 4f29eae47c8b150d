package types

// ObjectInfo describes one object in the repository container as the store
// reports it. LastModified carries the store's own textual representation so
// tag round-trips compare exactly.
type ObjectInfo struct {
	Name         string
	LastModified string
	Tags         map[string]string
}

// ControlInfo is the derived description of one package artifact: its
// control-file text plus digests and size computed over the entire artifact.
// It is never persisted on its own.
type ControlInfo struct {
	Control string
	MD5     string
	SHA1    string
	SHA256  string
	Size    int64
}
