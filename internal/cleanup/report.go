package cleanup

import (
	"sort"
	"strings"
)

// Report partitions the outcomes of a run into success/failure buckets per
// operation. Built once after the executor finishes; read-only afterwards.
type Report struct {
	OrphanCount   int
	DryRun        bool
	TaskSuccesses []JobID
	TaskFailures  []JobID
	JobSuccesses  []JobID
	JobFailures   []JobID
}

// BuildReport aggregates outcomes into a Report. Bucket listings are sorted
// so output is deterministic regardless of processing order.
func BuildReport(outcomes []Outcome) Report {
	r := Report{OrphanCount: len(outcomes)}

	for _, o := range outcomes {
		if o.TaskDeletion.OK() {
			r.TaskSuccesses = append(r.TaskSuccesses, o.Job)
		} else {
			r.TaskFailures = append(r.TaskFailures, o.Job)
		}
		if o.JobDeletion.OK() {
			r.JobSuccesses = append(r.JobSuccesses, o.Job)
		} else {
			r.JobFailures = append(r.JobFailures, o.Job)
		}
	}

	sortIDs(r.TaskSuccesses)
	sortIDs(r.TaskFailures)
	sortIDs(r.JobSuccesses)
	sortIDs(r.JobFailures)

	return r
}

// Failed reports whether any deletion attempt failed
func (r Report) Failed() bool {
	return len(r.TaskFailures) > 0 || len(r.JobFailures) > 0
}

// ExitCode returns the process exit code for monitoring: 0 when there was
// nothing to remove or every attempt succeeded, 1 otherwise.
func (r Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Render formats the report for stdout. Sections with no entries are
// omitted; an empty orphan set produces the single no-op line. In dry-run
// the section titles say what would happen, since nothing was deleted.
func (r Report) Render() string {
	if r.OrphanCount == 0 {
		return "No Chronos Jobs to remove"
	}

	if r.DryRun {
		var sections []string
		if len(r.TaskSuccesses) > 0 {
			sections = append(sections, formatListOutput("[DRY RUN] Would Remove Tasks (if any are running) for:", r.TaskSuccesses))
		}
		if len(r.JobSuccesses) > 0 {
			sections = append(sections, formatListOutput("[DRY RUN] Would Remove Jobs:", r.JobSuccesses))
		}
		return strings.Join(sections, "\n")
	}

	var sections []string
	if len(r.TaskSuccesses) > 0 {
		sections = append(sections, formatListOutput("Successfully Removed Tasks (if any were running) for:", r.TaskSuccesses))
	}
	if len(r.TaskFailures) > 0 {
		sections = append(sections, formatListOutput("Failed to Delete Tasks for:", r.TaskFailures))
	}
	if len(r.JobSuccesses) > 0 {
		sections = append(sections, formatListOutput("Successfully Removed Jobs:", r.JobSuccesses))
	}
	if len(r.JobFailures) > 0 {
		sections = append(sections, formatListOutput("Failed to Delete Jobs:", r.JobFailures))
	}

	return strings.Join(sections, "\n")
}

func formatListOutput(title string, ids []JobID) string {
	var b strings.Builder
	b.WriteString(title)
	for _, id := range ids {
		b.WriteString("\n  ")
		b.WriteString(string(id))
	}
	return b.String()
}

func sortIDs(ids []JobID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
