// Package soaconfig discovers which Chronos jobs are supposed to exist by
// reading the per-service configuration directory.
//
// Layout: <soa_dir>/<service>/chronos-<cluster>.yaml, one file per service
// per cluster. Top-level keys of the file are job instance names; the full
// Chronos job name is "<service>.<instance>".
package soaconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// JobPair associates an expected job with the service that declares it
type JobPair struct {
	Service string
	Job     string
}

// ComposeJobName builds the full Chronos job name from service and instance
func ComposeJobName(service, instance string) string {
	return service + "." + instance
}

// ExpectedJobs walks the soa directory and returns every (service, job) pair
// declared for the given cluster, sorted by job name. A missing chronos file
// for a service just means that service declares no jobs; an unreadable
// directory or malformed yaml is an error, since reconciling against a
// partial expected set would delete jobs that are still wanted.
func ExpectedJobs(soaDir, cluster string) ([]JobPair, error) {
	entries, err := os.ReadDir(soaDir)
	if err != nil {
		return nil, fmt.Errorf("read soa dir %s: %w", soaDir, err)
	}

	filename := fmt.Sprintf("chronos-%s.yaml", cluster)

	var pairs []JobPair
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		service := entry.Name()

		path := filepath.Join(soaDir, service, filename)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		instances, err := parseInstances(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		for _, instance := range instances {
			pairs = append(pairs, JobPair{
				Service: service,
				Job:     ComposeJobName(service, instance),
			})
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Job < pairs[j].Job })

	return pairs, nil
}

// parseInstances extracts job instance names from a chronos yaml document.
// Keys prefixed with "_" are yaml anchors shared between instances, not jobs.
func parseInstances(data []byte) ([]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var instances []string
	for key := range doc {
		if strings.HasPrefix(key, "_") {
			continue
		}
		instances = append(instances, key)
	}
	sort.Strings(instances)

	return instances, nil
}
