package facet

import (
	"testing"

	"github.com/facetpager/facetpager/pkg/dataset"
)

func buildDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	d := dataset.New()
	if err := d.AddStringColumn("cyl", []string{"6", "4", "6", "8", "4", "8"}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddStringColumn("gear", []string{"m", "m", "a", "a", "a", "m"}); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestKeyRoundTrip(t *testing.T) {
	k := MakeKey([]string{"6", "manual"})
	vals := k.Values()
	if len(vals) != 2 || vals[0] != "6" || vals[1] != "manual" {
		t.Errorf("Values = %v", vals)
	}
	if k.Label() != "6, manual" {
		t.Errorf("Label = %q", k.Label())
	}
}

func TestKeyerUnknownColumn(t *testing.T) {
	d := buildDataset(t)
	if _, err := NewKeyer(d, []string{"cyl", "missing"}); err == nil {
		t.Error("NewKeyer should fail for unknown columns")
	}
}

func TestLevelsFirstAppearanceOrder(t *testing.T) {
	d := buildDataset(t)
	k, err := NewKeyer(d, []string{"cyl"})
	if err != nil {
		t.Fatal(err)
	}

	levels := Levels(k, d.NumRows())
	want := []Key{MakeKey([]string{"6"}), MakeKey([]string{"4"}), MakeKey([]string{"8"})}
	if len(levels) != len(want) {
		t.Fatalf("levels = %v, want %v", levels, want)
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("levels[%d] = %q, want %q", i, levels[i], want[i])
		}
	}
}

func TestLevelsCombinedColumns(t *testing.T) {
	d := buildDataset(t)
	k, err := NewKeyer(d, []string{"cyl", "gear"})
	if err != nil {
		t.Fatal(err)
	}

	levels := Levels(k, d.NumRows())
	// Rows: (6,m) (4,m) (6,a) (8,a) (4,a) (8,m) - all distinct.
	if len(levels) != 6 {
		t.Fatalf("distinct combinations = %d, want 6", len(levels))
	}
	if levels[0] != MakeKey([]string{"6", "m"}) {
		t.Errorf("first level = %q", levels[0])
	}
}

func TestNumPages(t *testing.T) {
	tests := []struct {
		name    string
		levels  int
		perPage int
		want    int
	}{
		{name: "exact fit", levels: 8, perPage: 4, want: 2},
		{name: "remainder", levels: 10, perPage: 4, want: 3},
		{name: "single page", levels: 3, perPage: 4, want: 1},
		{name: "one level", levels: 1, perPage: 1, want: 1},
		{name: "zero levels", levels: 0, perPage: 4, want: 0},
		{name: "zero per page", levels: 5, perPage: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumPages(tt.levels, tt.perPage); got != tt.want {
				t.Errorf("NumPages(%d, %d) = %d, want %d", tt.levels, tt.perPage, got, tt.want)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	levels := make([]Key, 10)
	for i := range levels {
		levels[i] = MakeKey([]string{string(rune('a' + i))})
	}

	a := Assign(levels, 4)

	if got := a.NumPages(); got != 3 {
		t.Fatalf("NumPages = %d, want 3", got)
	}

	// Pages 1-2 hold 4 levels each, page 3 holds 2.
	wantCounts := map[int]int{1: 4, 2: 4, 3: 2}
	for page, count := range wantCounts {
		if got := len(a.LevelsForPage(page)); got != count {
			t.Errorf("page %d holds %d levels, want %d", page, got, count)
		}
	}

	// Every level maps to exactly one page, in consecutive buckets.
	for i, key := range levels {
		wantPage := 1 + i/4
		if got := a.PageOf(key); got != wantPage {
			t.Errorf("PageOf(%q) = %d, want %d", key, got, wantPage)
		}
	}

	if got := a.PageOf(MakeKey([]string{"zzz"})); got != 0 {
		t.Errorf("PageOf(unknown) = %d, want 0", got)
	}
	if got := a.LevelsForPage(4); got != nil {
		t.Errorf("LevelsForPage(4) = %v, want nil", got)
	}
	if got := a.LevelsForPage(0); got != nil {
		t.Errorf("LevelsForPage(0) = %v, want nil", got)
	}
}
