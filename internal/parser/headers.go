package parser

import (
	"fmt"
	"strings"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// compositeHeader merged two-column label split by the subheader row
const compositeHeader = "Scheduled APPT"

// timeHints subheader fragments marking the time half, typo-tolerant
var timeHints = []string{"time", "tme", "tim"}

// NormalizeHeaders resolves the two-row header/subheader grid into an
// ordered, deduplicated sequence of canonical column names. The scan runs
// left to right carrying the last non-empty primary label, so merged-cell
// continuations under the composite header can be split by their subheader.
func NormalizeHeaders(primary, subheader []string) []string {
	clean := make([]string, 0, len(primary))
	seen := map[string]int{}
	lastPrimary := ""

	for i := range primary {
		name := strings.TrimSpace(primary[i])
		sub := ""
		if i < len(subheader) {
			sub = strings.ToLower(strings.TrimSpace(subheader[i]))
		}

		if name == "" {
			// merged-cell continuation
			switch {
			case lastPrimary == compositeHeader && strings.Contains(sub, "date"):
				name = model.ColScheduledDate
			case lastPrimary == compositeHeader && containsAny(sub, timeHints):
				name = model.ColScheduledTime
			default:
				name = fmt.Sprintf("Unnamed_%d", i)
			}
		} else {
			lastPrimary = name
			if name == compositeHeader {
				switch {
				case strings.Contains(sub, "date"):
					name = model.ColScheduledDate
				case containsAny(sub, timeHints):
					name = model.ColScheduledTime
				}
			}
		}

		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		} else {
			seen[name] = 0
		}
		clean = append(clean, name)
	}

	return clean
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
