package cleanup

import (
	"reflect"
	"testing"
)

func TestOrphans(t *testing.T) {
	tests := []struct {
		name     string
		expected []JobID
		actual   []JobID
		want     []JobID
	}{
		{
			name:     "both empty",
			expected: nil,
			actual:   nil,
			want:     nil,
		},
		{
			name:     "actual subset of expected",
			expected: []JobID{"svc.jobX", "svc.jobY"},
			actual:   []JobID{"svc.jobX"},
			want:     nil,
		},
		{
			name:     "two orphans",
			expected: []JobID{"svc.jobX"},
			actual:   []JobID{"svc.jobX", "svc.jobY", "svc.jobZ"},
			want:     []JobID{"svc.jobY", "svc.jobZ"},
		},
		{
			name:     "everything orphaned when nothing expected",
			expected: nil,
			actual:   []JobID{"b", "a"},
			want:     []JobID{"a", "b"},
		},
		{
			name:     "expected jobs not running are ignored",
			expected: []JobID{"svc.jobX", "svc.gone"},
			actual:   []JobID{"svc.jobX"},
			want:     nil,
		},
		{
			name:     "duplicates in actual collapse to one orphan",
			expected: []JobID{"keep"},
			actual:   []JobID{"dupe", "keep", "dupe", "dupe"},
			want:     []JobID{"dupe"},
		},
		{
			name:     "duplicates in expected are harmless",
			expected: []JobID{"keep", "keep"},
			actual:   []JobID{"keep", "stale"},
			want:     []JobID{"stale"},
		},
		{
			name:     "result sorted regardless of input order",
			expected: []JobID{"m"},
			actual:   []JobID{"z", "a", "m", "k"},
			want:     []JobID{"a", "k", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orphans(tt.expected, tt.actual)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Orphans() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrphansInputOrderIndependence(t *testing.T) {
	expected := []JobID{"svc.jobX"}
	forward := Orphans(expected, []JobID{"svc.jobY", "svc.jobZ", "svc.jobX"})
	reversed := Orphans(expected, []JobID{"svc.jobX", "svc.jobZ", "svc.jobY"})

	if !reflect.DeepEqual(forward, reversed) {
		t.Errorf("orphan set depends on input order: %v vs %v", forward, reversed)
	}
}

func TestOrphansDoesNotMutateInputs(t *testing.T) {
	expected := []JobID{"b", "a"}
	actual := []JobID{"c", "b"}

	Orphans(expected, actual)

	if !reflect.DeepEqual(expected, []JobID{"b", "a"}) {
		t.Errorf("expected slice mutated: %v", expected)
	}
	if !reflect.DeepEqual(actual, []JobID{"c", "b"}) {
		t.Errorf("actual slice mutated: %v", actual)
	}
}
