package render

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const (
	// DescriptionLimit is the number of characters of an offer description shown in lists.
	DescriptionLimit = 100
	// MaxSkills is the number of skill tags shown per offer.
	MaxSkills = 4

	ellipsis     = "..."
	salaryFormat = "# ###,"
)

// Initial is the badge letter of a name: its first character, upper-cased.
func Initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return strings.ToUpper(string(r))
}

// TruncateDescription keeps the first DescriptionLimit characters and marks the cut.
// Shorter descriptions are returned untouched.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= DescriptionLimit {
		return s
	}
	return string(runes[:DescriptionLimit]) + ellipsis
}

// VisibleSkills caps the skill tags shown for an offer.
func VisibleSkills(skills []string) []string {
	if len(skills) <= MaxSkills {
		return skills
	}
	return skills[:MaxSkills]
}

// FormatSalary groups thousands with spaces: 1234567 -> "1 234 567".
// Missing or zero amounts render as "0".
func FormatSalary(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return humanize.FormatInteger(salaryFormat, int(math.Trunc(v)))
}

// FormatScore prints a score without a trailing fraction when it is whole.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

type Tier int

const (
	TierUnfavorable Tier = iota
	TierNeutral
	TierFavorable
)

const (
	favorableScore = 70
	neutralScore   = 50
)

// TierFor maps a score onto three discrete tiers.
func TierFor(score float64) Tier {
	switch {
	case score >= favorableScore:
		return TierFavorable
	case score >= neutralScore:
		return TierNeutral
	default:
		return TierUnfavorable
	}
}

// Color is the accent color family of the tier.
func (t Tier) Color() string {
	switch t {
	case TierFavorable:
		return "green"
	case TierNeutral:
		return "yellow"
	default:
		return "red"
	}
}

func (t Tier) String() string {
	switch t {
	case TierFavorable:
		return "favorable"
	case TierNeutral:
		return "neutral"
	default:
		return "unfavorable"
	}
}
