package collection

import (
	"testing"

	"markdown-collector-api/core/domain"
)

func TestGroupByDate(t *testing.T) {
	entries := []domain.Entry{
		{URL: "a", SavedAt: "2026-08-25T10:00:00Z"},
		{URL: "b", SavedAt: "2026-08-26T08:00:00Z"},
		{URL: "c", SavedAt: "2026-08-25T18:00:00Z"},
		{URL: "d", SavedAt: "garbage"},
	}

	grouped := GroupByDate(entries)

	if len(grouped) != 3 {
		t.Fatalf("got %d groups, want 3", len(grouped))
	}
	if len(grouped["2026-08-25"]) != 2 {
		t.Errorf("2026-08-25 has %d entries, want 2", len(grouped["2026-08-25"]))
	}
	if len(grouped["2026-08-26"]) != 1 {
		t.Errorf("2026-08-26 has %d entries, want 1", len(grouped["2026-08-26"]))
	}
	if len(grouped[UnknownDateGroup]) != 1 {
		t.Errorf("%s has %d entries, want 1", UnknownDateGroup, len(grouped[UnknownDateGroup]))
	}
}

func TestGroupByDate_NewestFirstWithinGroup(t *testing.T) {
	entries := []domain.Entry{
		{URL: "older", SavedAt: "2026-08-25T10:00:00Z"},
		{URL: "newer", SavedAt: "2026-08-25T18:00:00Z"},
	}

	grouped := GroupByDate(entries)

	group := grouped["2026-08-25"]
	if group[0].URL != "newer" || group[1].URL != "older" {
		t.Errorf("group order = [%s %s], want [newer older]", group[0].URL, group[1].URL)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	grouped := GroupByDate(nil)

	if len(grouped) != 0 {
		t.Errorf("got %d groups for empty input, want 0", len(grouped))
	}
}

func TestCoreDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips www", "https://www.example.com/path", "example.com"},
		{"keeps bare domain", "https://example.com/path", "example.com"},
		{"strips deep subdomains", "https://a.b.example.com", "example.com"},
		{"unparseable input returned as-is", "not a url", "not a url"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoreDomain(tt.input); got != tt.want {
				t.Errorf("CoreDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
