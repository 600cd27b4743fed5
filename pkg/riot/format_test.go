package riot

import (
	"strings"
	"testing"
)

func TestRenderNestedStruct(t *testing.T) {
	entry := LeagueEntry{
		QueueType:  "RANKED_SOLO_5x5",
		Tier:       "GOLD",
		Rank:       "IV",
		MiniSeries: &MiniSeries{Progress: "WLN", Target: 2, Wins: 1, Losses: 1},
	}

	out := Render(entry, "  ")
	if !strings.HasPrefix(out, "LeagueEntry(") {
		t.Fatalf("unexpected prefix: %q", out)
	}
	if !strings.Contains(out, "MiniSeries(") {
		t.Fatalf("nested struct not rendered by type name: %q", out)
	}
	if !strings.Contains(out, "progress = WLN") {
		t.Fatalf("nested field missing: %q", out)
	}
}

func TestRenderNilPointer(t *testing.T) {
	out := Render(LeagueEntry{}, "  ")
	if !strings.Contains(out, "miniSeries = <nil>") {
		t.Fatalf("nil pointer should render as <nil>: %q", out)
	}
}

func TestRenderSlice(t *testing.T) {
	info := ChampionRotationInfo{FreeChampionIDs: []int{1, 2, 3}, MaxNewPlayerLevel: 10}

	out := Render(info, " ")
	if !strings.Contains(out, "[\n") {
		t.Fatalf("non-empty slice should open a bracket block: %q", out)
	}
	one := strings.Index(out, "1")
	three := strings.Index(out, "3")
	if one < 0 || three < 0 || one > three {
		t.Fatalf("slice elements out of order: %q", out)
	}
}

func TestRenderEmptySlice(t *testing.T) {
	out := Render(ChampionRotationInfo{}, " ")
	if !strings.Contains(out, "freeChampionIds = []") {
		t.Fatalf("empty slice should render as []: %q", out)
	}
}

func TestRenderMapIsSorted(t *testing.T) {
	m := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}

	out := Render(m, " ")
	alpha := strings.Index(out, "alpha")
	mid := strings.Index(out, "mid")
	zeta := strings.Index(out, "zeta")
	if !(alpha < mid && mid < zeta) {
		t.Fatalf("map keys not sorted: %q", out)
	}
}

func TestRenderSeparatorControlsIndentation(t *testing.T) {
	s := Summoner{ID: "abc"}

	tab := Render(s, "\t")
	if !strings.Contains(tab, "\n\tid = abc") {
		t.Fatalf("tab separator not applied: %q", tab)
	}

	wide := Render(s, "____")
	if !strings.Contains(wide, "\n____id = abc") {
		t.Fatalf("custom separator not applied: %q", wide)
	}
}
