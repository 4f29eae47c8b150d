// Package shared provides common naming helpers used across multiple
// packages in the apt-repo-function codebase.
package shared

import (
	"strings"

	"apt-repo-function/internal/types"
)

// IsPackage reports whether a container object name refers to a package
// artifact.
func IsPackage(name string) bool {
	return strings.HasSuffix(name, types.PackageSuffix)
}

// IsMetadata reports whether a container object name refers to a metadata
// record.
func IsMetadata(name string) bool {
	return strings.HasSuffix(name, types.MetadataSuffix)
}

// MetadataName returns the companion metadata object name for a package
// artifact: the same path with the package extension replaced.
func MetadataName(packageName string) string {
	return strings.TrimSuffix(packageName, types.PackageSuffix) + types.MetadataSuffix
}
