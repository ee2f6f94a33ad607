package exporter

import (
	"strings"
	"testing"
	"time"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

func julyWindow(t *testing.T) model.ReferenceWindow {
	t.Helper()
	return model.PreviousMonthWindow(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
}

func TestShortStoreLabel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Store #45 Springfield":      "Store #45",
		"RCSS #1234 Calgary AB":      "RCSS #1234",
		"  Fortinos #62  Hamilton  ": "Fortinos #62",
		"Store #45":                  "Store #45",
		"Head Office":                "Head Office",
		"":                           "",
	}
	for in, want := range cases {
		if got := ShortStoreLabel(in); got != want {
			t.Errorf("ShortStoreLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSheetNamer_SuffixAndSanitize(t *testing.T) {
	t.Parallel()

	n := NewSheetNamer()
	if got := n.Name("Store #45 Springfield", julyWindow(t)); got != "Store #45 07.26" {
		t.Fatalf("name: %q", got)
	}
	// slash is illegal in a sheet title and is stripped
	if got := n.Name("Zehrs #12 Kitchener/Waterloo", julyWindow(t)); got != "Zehrs #12 07.26" {
		t.Fatalf("sanitized name: %q", got)
	}
}

func TestSheetNamer_Collisions(t *testing.T) {
	t.Parallel()

	n := NewSheetNamer()
	n.Reserve("Master")

	first := n.Name("Store #45 Springfield", julyWindow(t))
	second := n.Name("Store #45 Oshawa", julyWindow(t))
	if first != "Store #45 07.26" {
		t.Fatalf("first: %q", first)
	}
	if second != "Store #45 07.26 (2)" {
		t.Fatalf("second: %q", second)
	}
	third := n.Name("Store #45 Barrie", julyWindow(t))
	if third != "Store #45 07.26 (3)" {
		t.Fatalf("third: %q", third)
	}
}

func TestSheetNamer_CollisionsRespectLengthLimit(t *testing.T) {
	t.Parallel()

	long := "Superstore Distribution Centre East"
	n := NewSheetNamer()
	first := n.Name(long, julyWindow(t))
	second := n.Name(long, julyWindow(t))

	if len(first) > 31 || len(second) > 31 {
		t.Fatalf("titles exceed limit: %q %q", first, second)
	}
	if first == second {
		t.Fatalf("titles collide: %q", first)
	}
	if !strings.HasSuffix(second, " (2)") {
		t.Fatalf("second title not disambiguated: %q", second)
	}
}
