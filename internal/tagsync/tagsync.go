// Package tagsync computes how a restaurant's tag links must change to match
// a desired set of tag names.
package tagsync

import (
	"sort"
	"strings"
)

// Normalize returns the canonical form of a tag name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeAll normalizes names, drops blanks and duplicates, and keeps the
// first occurrence order.
func NormalizeAll(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = Normalize(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Plan lists the registry and link changes for one restaurant. Every list is
// sorted and the three lists are disjoint.
type Plan struct {
	// ToCreate are desired names missing from the registry. They must be
	// created and then linked.
	ToCreate []string
	// ToConnect are registered desired names not yet linked.
	ToConnect []string
	// ToDisconnect are linked names no longer desired.
	ToDisconnect []string
}

// Empty reports whether applying the plan changes nothing.
func (p Plan) Empty() bool {
	return len(p.ToCreate) == 0 && len(p.ToConnect) == 0 && len(p.ToDisconnect) == 0
}

// Diff compares the current links with the desired names. registered reports
// which desired names already exist in the registry.
func Diff(current, desired []string, registered map[string]bool) Plan {
	currentSet := toSet(NormalizeAll(current))
	desiredNames := NormalizeAll(desired)
	desiredSet := toSet(desiredNames)

	plan := Plan{ToCreate: []string{}, ToConnect: []string{}, ToDisconnect: []string{}}
	for _, name := range desiredNames {
		switch {
		case !registered[name]:
			plan.ToCreate = append(plan.ToCreate, name)
		case !has(currentSet, name):
			plan.ToConnect = append(plan.ToConnect, name)
		}
	}
	for name := range currentSet {
		if !has(desiredSet, name) {
			plan.ToDisconnect = append(plan.ToDisconnect, name)
		}
	}

	sort.Strings(plan.ToCreate)
	sort.Strings(plan.ToConnect)
	sort.Strings(plan.ToDisconnect)
	return plan
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func has(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
