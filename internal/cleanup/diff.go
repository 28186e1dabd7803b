// Package cleanup implements the reconciliation core: diffing the jobs that
// exist against the jobs that should exist, deleting the orphans, and
// aggregating the per-job outcomes into a report.
package cleanup

import "sort"

// JobID names a scheduled job within the cluster namespace. It is opaque to
// this package; equality is by exact value.
type JobID string

// Orphans returns the jobs present in actual but absent from expected,
// deduplicated and sorted ascending. Duplicates and ordering within the
// inputs do not affect the result.
func Orphans(expected, actual []JobID) []JobID {
	want := make(map[JobID]struct{}, len(expected))
	for _, id := range expected {
		want[id] = struct{}{}
	}

	seen := make(map[JobID]struct{}, len(actual))
	var orphans []JobID
	for _, id := range actual {
		if _, ok := want[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		orphans = append(orphans, id)
	}

	sort.Slice(orphans, func(i, j int) bool { return orphans[i] < orphans[j] })

	return orphans
}
