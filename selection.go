package keiba

import (
	"regexp"
	"sort"
	"strings"
)

var nonDigitRE = regexp.MustCompile(`\D`)

// pad2 zero-pads a runner or race number to the two digits used everywhere
// in the document and the JV-Link database.
func pad2(num string) string {
	if len(num) < 2 {
		return "0" + num
	}
	return num
}

// ParseSelection extracts the distinct runner numbers referenced by a
// selection string like "05-11", "3-6-15" or the bracket form "枠5-5", each
// zero-padded to two digits and returned in ascending order.
//
// The function is total: non-digit characters are stripped, and malformed
// input simply yields fewer or no numbers. Whether a selection is
// well-formed is a validation concern, not a parsing one.
func ParseSelection(selection string) []string {
	seen := make(map[string]bool)
	var nums []string
	for _, part := range strings.Split(selection, "-") {
		num := nonDigitRE.ReplaceAllString(part, "")
		if num == "" {
			continue
		}
		num = pad2(num)
		if !seen[num] {
			seen[num] = true
			nums = append(nums, num)
		}
	}
	sort.Strings(nums)
	return nums
}

// RunnerNumbers unions the runner numbers referenced by a set of bets,
// in ascending order.
func RunnerNumbers(bets []Bet) []string {
	seen := make(map[string]bool)
	var nums []string
	for _, bet := range bets {
		for _, num := range ParseSelection(bet.Selection) {
			if !seen[num] {
				seen[num] = true
				nums = append(nums, num)
			}
		}
	}
	sort.Strings(nums)
	return nums
}
