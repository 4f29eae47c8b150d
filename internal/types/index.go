package types

// IndexEntry is one stanza of a Packages index, reduced to the fields the
// inspect report cares about.
type IndexEntry struct {
	Package  string
	Version  string
	Filename string
	Size     int64
}

type PackageVersions struct {
	Name     string   `yaml:"name"`
	Versions []string `yaml:"versions"`
}

// IndexReport is the inspect command's summary of the current index.
type IndexReport struct {
	RecordCount  int               `yaml:"record_count"`
	PackageCount int               `yaml:"package_count"`
	Packages     []PackageVersions `yaml:"packages"`
}
