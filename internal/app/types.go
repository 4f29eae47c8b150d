package app

import "apt-repo-function/internal/types"

type ScanResult struct {
	Checked int
	Rebuilt int
	Corrupt int
}

type AssembleResult struct {
	Records        int
	IndexSize      int
	CompressedSize int
}

type MaintainResult struct {
	Scan     ScanResult
	Assemble AssembleResult
}

type InspectResult struct {
	Report types.IndexReport
}
