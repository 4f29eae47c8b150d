package types

// Naming convention of the repository container. Package artifacts end in
// PackageSuffix; each has a companion metadata object at the same path with
// the extension replaced by MetadataSuffix. The index artifacts live at the
// container root under fixed names.
const (
	PackageSuffix       = ".deb"
	MetadataSuffix      = ".package"
	IndexName           = "Packages"
	CompressedIndexName = "Packages.xz"

	// TagLastModified is the store-level tag on a metadata object holding
	// the owning package's last-modified value, as the exact string the
	// store reported. Comparison is string equality, never reparsed.
	TagLastModified = "DebLastModified"
)
