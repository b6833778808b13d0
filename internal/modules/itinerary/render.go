// README: Local pre-computation for HTML rendering: locations, route URL input, cost summary.
package itinerary

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// noExpenseMessage is the fixed summary when no entry carries usable cost data.
const noExpenseMessage = "표시할 경비 정보가 없습니다."

var koPrinter = message.NewPrinter(language.Korean)

// DistinctLocations extracts the ordered sequence of distinct location values
// from the entries, first occurrence wins; entries without a location are
// skipped. Callers pass an already-sorted schedule so the sequence follows
// the journey chronologically.
func DistinctLocations(entries []ScheduleEntry) []string {
	seen := make(map[string]bool, len(entries))
	var out []string
	for _, e := range entries {
		if e.Location == "" || seen[e.Location] {
			continue
		}
		seen[e.Location] = true
		out = append(out, e.Location)
	}
	return out
}

// costValue parses a free-text monetary string like "₩20,000", "$50" or
// "30000원" by stripping every non-digit rune. Strings with no digits
// contribute zero.
func costValue(cost string) int64 {
	var digits []rune
	for _, r := range cost {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// AggregateCost sums the parsed cost of every entry. Currency symbols are
// ignored; the product treats all amounts as KRW for display purposes.
func AggregateCost(entries []ScheduleEntry) int64 {
	var total int64
	for _, e := range entries {
		if e.Cost != "" {
			total += costValue(e.Cost)
		}
	}
	return total
}

// CostSummary formats the aggregate as ko-KR grouped digits with a currency
// suffix, or the fixed no-expense message when the sum is zero.
func CostSummary(entries []ScheduleEntry) string {
	total := AggregateCost(entries)
	if total == 0 {
		return noExpenseMessage
	}
	return koPrinter.Sprintf("%d", total) + "원"
}
