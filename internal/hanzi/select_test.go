package hanzi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectCandidates(t *testing.T) {
	tcs := []struct {
		name    string
		levels  *Range
		strokes *Range
		want    string
	}{
		{name: "no filters", want: "一二人人大天木"},
		{name: "level band", levels: &Range{Min: 2, Max: 3}, want: "大天木"},
		{name: "single level", levels: &Range{Min: 1, Max: 1}, want: "一二人人"},
		{name: "level band misses", levels: &Range{Min: 5, Max: 9}, want: ""},
		{name: "inverted level band", levels: &Range{Min: 3, Max: 1}, want: ""},
		{name: "stroke membership keeps multiplicity", strokes: &Range{Min: 2, Max: 2}, want: "二人人"},
		{name: "both filters", levels: &Range{Min: 1, Max: 2}, strokes: &Range{Min: 3, Max: 4}, want: "大天"},
		{name: "stroke band misses", strokes: &Range{Min: 9, Max: 9}, want: ""},
		{name: "inverted stroke band", strokes: &Range{Min: 4, Max: 1}, want: ""},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := string(SelectCandidates(fixture(), tc.levels, tc.strokes))
			if got != tc.want {
				t.Fatalf("expected pool %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSelectCandidatesFullRangesMatchNoFilter(t *testing.T) {
	ds, err := EmbeddedDataset()
	if err != nil {
		t.Fatalf("load embedded dataset: %v", err)
	}
	all := &Range{Min: 0, Max: 255}
	unfiltered := SelectCandidates(ds, nil, nil)
	filtered := SelectCandidates(ds, all, all)
	if diff := cmp.Diff(unfiltered, filtered); diff != "" {
		t.Fatalf("pool mismatch (-unfiltered +full ranges):\n%s", diff)
	}
}

func TestSelectCandidatesLeavesDatasetUntouched(t *testing.T) {
	ds := fixture()
	SelectCandidates(ds, &Range{Min: 1, Max: 1}, &Range{Min: 1, Max: 1})
	if diff := cmp.Diff(fixture(), ds); diff != "" {
		t.Fatalf("dataset mutated (-want +got):\n%s", diff)
	}
}
