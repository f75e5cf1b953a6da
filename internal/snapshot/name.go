// Package snapshot persists and reloads per-step compilation snapshots.
//
// Each snapshot becomes up to three files next to each other: the optimized
// IR (.yul), the hex bytecode (.bin) and a metadata record (.json), all named
// <base>-step-NNNNN[-<letter>]. Downstream tooling re-derives the snapshot
// index purely from the file name, so the naming is fixed and parseable.
package snapshot

import (
	"fmt"
	"regexp"
	"strconv"
)

const namePattern = `^(.*)-step-(\d{5})(?:-([a-zA-Z]))?\.%s$`

var (
	binNameRegex  = regexp.MustCompile(fmt.Sprintf(namePattern, "bin"))
	metaNameRegex = regexp.MustCompile(fmt.Sprintf(namePattern, "json"))
)

// NameParts is a snapshot file name taken apart.
type NameParts struct {
	Base  string
	Index int

	// Step is the trailing step letter; empty for the baseline snapshot.
	Step string
}

// FileBase builds the extension-less snapshot file name: the contract base
// name, the zero-padded five-digit index, and the last step letter when the
// prefix is non-empty.
func FileBase(base string, index int, step string) string {
	name := fmt.Sprintf("%s-step-%05d", base, index)
	if step != "" {
		name += "-" + step
	}
	return name
}

// ParseBinName takes apart a bytecode file name. The second return value is
// false for names that do not follow the snapshot naming scheme.
func ParseBinName(name string) (NameParts, bool) {
	return parseName(binNameRegex, name)
}

// ParseMetaName takes apart a metadata file name.
func ParseMetaName(name string) (NameParts, bool) {
	return parseName(metaNameRegex, name)
}

func parseName(pattern *regexp.Regexp, name string) (NameParts, bool) {
	match := pattern.FindStringSubmatch(name)
	if match == nil {
		return NameParts{}, false
	}
	index, err := strconv.Atoi(match[2])
	if err != nil {
		return NameParts{}, false
	}
	return NameParts{Base: match[1], Index: index, Step: match[3]}, true
}
