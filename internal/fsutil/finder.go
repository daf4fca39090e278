// Package fsutil resolves attribute names from the command line and from the
// fusion results directory.
package fsutil

import (
	"fmt"
	"os"
	"sort"
)

// Wildcard stands for every attribute file of the fusion directory.
const Wildcard = "*"

// ListAttributes returns the names of the regular files in dir, excluding the
// names in exclude, sorted. Directories are never attributes.
func ListAttributes(dir string, exclude []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list attributes in %s: %w", dir, err)
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, excluded := skip[e.Name()]; excluded {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ExpandTargets turns positional arguments into attribute names. No argument
// means Wildcard. The directory is only listed when a Wildcard is present.
// Duplicates are dropped, keeping the first occurrence.
func ExpandTargets(args []string, dir string, exclude []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{Wildcard}
	}

	var targets []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		targets = append(targets, name)
	}

	var listing []string
	for _, arg := range args {
		if arg != Wildcard {
			add(arg)
			continue
		}
		if listing == nil {
			names, err := ListAttributes(dir, exclude)
			if err != nil {
				return nil, err
			}
			listing = names
		}
		for _, name := range listing {
			add(name)
		}
	}
	return targets, nil
}
