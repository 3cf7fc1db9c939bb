package taps

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const metadataEntryPrefixConstant = "."

// TapDiscoverer locates installed tap directories beneath a taps root.
type TapDiscoverer struct{}

// NewTapDiscoverer constructs a discoverer backed by direct directory listings.
func NewTapDiscoverer() *TapDiscoverer {
	return &TapDiscoverer{}
}

// DiscoverTapDirectories lists directories exactly two levels below tapsRoot in
// lexical order. Entries whose name ends with excludedNameSuffix and filesystem
// metadata entries are omitted. A missing or unreadable taps root yields no taps.
func (discoverer *TapDiscoverer) DiscoverTapDirectories(tapsRoot string, excludedNameSuffix string) ([]string, error) {
	trimmedTapsRoot := strings.TrimSpace(tapsRoot)
	if len(trimmedTapsRoot) == 0 {
		return []string{}, nil
	}

	ownerEntries, rootReadError := os.ReadDir(trimmedTapsRoot)
	if rootReadError != nil {
		return []string{}, nil
	}

	tapDirectories := []string{}
	for _, ownerEntry := range ownerEntries {
		if !ownerEntry.IsDir() || isMetadataEntry(ownerEntry.Name()) {
			continue
		}

		ownerDirectory := filepath.Join(trimmedTapsRoot, ownerEntry.Name())
		tapEntries, ownerReadError := os.ReadDir(ownerDirectory)
		if ownerReadError != nil {
			continue
		}

		for _, tapEntry := range tapEntries {
			if !tapEntry.IsDir() || isMetadataEntry(tapEntry.Name()) {
				continue
			}
			if isExcludedName(tapEntry.Name(), excludedNameSuffix) {
				continue
			}
			tapDirectories = append(tapDirectories, filepath.Join(ownerDirectory, tapEntry.Name()))
		}
	}

	sort.Strings(tapDirectories)
	return tapDirectories, nil
}

func isMetadataEntry(entryName string) bool {
	return strings.HasPrefix(entryName, metadataEntryPrefixConstant)
}

func isExcludedName(entryName string, excludedNameSuffix string) bool {
	trimmedSuffix := strings.TrimSpace(excludedNameSuffix)
	if len(trimmedSuffix) == 0 {
		return false
	}
	return strings.HasSuffix(entryName, trimmedSuffix)
}
