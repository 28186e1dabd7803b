package chronos

// Job is the subset of a Chronos job definition this tool cares about.
// The list endpoint returns the full definition; only the name is needed
// to reconcile existence.
type Job struct {
	Name             string   `json:"name"`
	Command          string   `json:"command"`
	Schedule         string   `json:"schedule,omitempty"`
	Parents          []string `json:"parents,omitempty"`
	Owner            string   `json:"owner,omitempty"`
	Disabled         bool     `json:"disabled,omitempty"`
	SuccessCount     int      `json:"successCount,omitempty"`
	ErrorCount       int      `json:"errorCount,omitempty"`
	LastSuccess      string   `json:"lastSuccess,omitempty"`
	LastError        string   `json:"lastError,omitempty"`
	ScheduleTimeZone string   `json:"scheduleTimeZone,omitempty"`
	Epsilon          string   `json:"epsilon,omitempty"`
}
