package app

import (
	"bytes"
	"context"
	"sort"

	debversion "github.com/knqyf263/go-deb-version"

	"apt-repo-function/internal/core"
	"apt-repo-function/internal/types"
)

// Inspect downloads the current Packages index and summarizes it: every
// package name with its versions in Debian version order.
func (s Service) Inspect(ctx context.Context) (InspectResult, error) {
	payload, err := s.Store.Download(ctx, types.IndexName)
	if err != nil {
		return InspectResult{}, err
	}
	entries, err := core.ParsePackagesIndex(bytes.NewReader(payload))
	if err != nil {
		return InspectResult{}, err
	}

	versionsByPackage := map[string][]string{}
	for _, entry := range entries {
		versionsByPackage[entry.Package] = append(versionsByPackage[entry.Package], entry.Version)
	}

	names := make([]string, 0, len(versionsByPackage))
	for name := range versionsByPackage {
		names = append(names, name)
	}
	sort.Strings(names)

	report := types.IndexReport{
		RecordCount:  len(entries),
		PackageCount: len(names),
	}
	for _, name := range names {
		report.Packages = append(report.Packages, types.PackageVersions{
			Name:     name,
			Versions: sortDebVersions(versionsByPackage[name]),
		})
	}
	return InspectResult{Report: report}, nil
}

func sortDebVersions(versions []string) []string {
	sort.Slice(versions, func(i, j int) bool {
		vi, err := debversion.NewVersion(versions[i])
		if err != nil {
			return versions[i] < versions[j]
		}
		vj, err := debversion.NewVersion(versions[j])
		if err != nil {
			return versions[i] < versions[j]
		}
		return vi.Compare(vj) < 0
	})
	return versions
}
