package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"studentsignal/pkg/models"
)

// fullRidePhrases mark amounts that cover everything (or are not a fixed sum).
var fullRidePhrases = []string{"full cost", "full tuition", "full ride", "varies"}

// numberToken matches "2,500", "20000", "1,000.50", optionally after a "$".
var numberToken = regexp.MustCompile(`(\$\s*)?(\d+(?:,\d{3})*(?:\.\d+)?)`)

// ParseAmount turns a free-text award amount into a ParsedAmount.
//
// Rules, first match wins:
//   - blank text is unknown
//   - a full-ride phrase wins over any number in the text
//   - no numbers is unknown
//   - "up to N" is the range 0..N
//   - one number is fixed, two or more is the range min..max
//
// Two numbers are always a range. With three or more, only the numbers that
// carry a "$" are considered when there are any, so a year or a count of
// awards listed with several dollar figures does not widen the range.
func ParseAmount(text string) models.ParsedAmount {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ParsedAmount{Kind: models.AmountUnknown}
	}

	lower := strings.ToLower(text)
	for _, phrase := range fullRidePhrases {
		if strings.Contains(lower, phrase) {
			return models.ParsedAmount{Kind: models.AmountFullRide}
		}
	}

	nums := amountNumbers(text)
	if len(nums) == 0 {
		return models.ParsedAmount{Kind: models.AmountUnknown}
	}

	if strings.Contains(lower, "up to") {
		return models.ParsedAmount{Min: int64Ptr(0), Max: int64Ptr(nums[0]), Kind: models.AmountRange}
	}

	if len(nums) == 1 {
		return models.ParsedAmount{Min: int64Ptr(nums[0]), Max: int64Ptr(nums[0]), Kind: models.AmountFixed}
	}

	lo, hi := nums[0], nums[0]
	for _, n := range nums[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	return models.ParsedAmount{Min: int64Ptr(lo), Max: int64Ptr(hi), Kind: models.AmountRange}
}

// amountNumbers returns whole-dollar values in order of appearance. With
// three or more values it keeps only the "$"-anchored ones, if any.
func amountNumbers(text string) []int64 {
	var all, anchored []int64
	for _, m := range numberToken.FindAllStringSubmatch(text, -1) {
		n, ok := wholeDollars(m[2])
		if !ok {
			continue
		}
		all = append(all, n)
		if m[1] != "" {
			anchored = append(anchored, n)
		}
	}
	if len(all) >= 3 && len(anchored) > 0 {
		return anchored
	}
	return all
}

func wholeDollars(token string) (int64, bool) {
	token = strings.ReplaceAll(token, ",", "")
	if i := strings.IndexByte(token, '.'); i >= 0 {
		token = token[:i]
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func int64Ptr(n int64) *int64 { return &n }
