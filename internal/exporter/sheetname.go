package exporter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// maxSheetTitleLen Excel's sheet name limit
const maxSheetTitleLen = 31

var (
	storeNumberPattern = regexp.MustCompile(`#\d+`)
	illegalSheetChars  = regexp.MustCompile(`[\\/*?:\[\]]`)
)

// ShortStoreLabel trims a full store name to everything through the word
// carrying its `#<digits>` token; names without the token pass through trimmed
func ShortStoreLabel(store string) string {
	loc := storeNumberPattern.FindStringIndex(store)
	if loc == nil {
		return strings.TrimSpace(store)
	}
	after := store[loc[0]:]
	if sp := strings.IndexFunc(after, unicode.IsSpace); sp >= 0 {
		return strings.TrimSpace(store[:loc[0]+sp])
	}
	return strings.TrimSpace(store)
}

// SheetNamer assigns sanitized, length-bounded, collision-free sheet titles
type SheetNamer struct {
	existing map[string]bool
}

// NewSheetNamer creates a namer with no reserved titles
func NewSheetNamer() *SheetNamer {
	return &SheetNamer{existing: map[string]bool{}}
}

// Reserve marks a title already present in the workbook as taken
func (n *SheetNamer) Reserve(title string) {
	n.existing[title] = true
}

// Name derives the unique sheet identifier for a store within the run's
// reference window: short label plus MM.YY suffix, workbook-illegal
// characters stripped, truncated to 31 characters, then disambiguated with
// " (2)", " (3)", ... suffixes that still fit the limit.
func (n *SheetNamer) Name(store string, w model.ReferenceWindow) string {
	base := fmt.Sprintf("%s %s", ShortStoreLabel(store), w.SheetSuffix())
	base = illegalSheetChars.ReplaceAllString(base, "")
	base = strings.TrimSpace(base)
	if base == "" {
		base = "Sheet"
	}
	if len(base) > maxSheetTitleLen {
		base = base[:maxSheetTitleLen]
	}

	if !n.existing[base] {
		n.existing[base] = true
		return base
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate := base
		if len(candidate)+len(suffix) > maxSheetTitleLen {
			candidate = candidate[:maxSheetTitleLen-len(suffix)]
		}
		candidate += suffix
		if !n.existing[candidate] {
			n.existing[candidate] = true
			return candidate
		}
	}
}
