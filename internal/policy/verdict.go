package policy

import (
	"errors"
	"slices"
	"strings"
)

// ErrPolicyViolation is matched by every [*ViolationError] via [errors.Is].
var ErrPolicyViolation = errors.New("password does not meet policy")

// Tier is a coarse strength rating.
type Tier int

const (
	TierWeak Tier = iota
	TierMedium
	TierStrong
	TierVeryStrong
)

func (t Tier) String() string {
	switch t {
	case TierVeryStrong:
		return "Very Strong"
	case TierStrong:
		return "Strong"
	case TierMedium:
		return "Medium"
	default:
		return "Weak"
	}
}

// Percent maps the tier to a 0-100 strength score.
func (t Tier) Percent() int {
	switch t {
	case TierVeryStrong:
		return 90
	case TierStrong:
		return 75
	case TierMedium:
		return 50
	default:
		return 25
	}
}

// tierFor buckets score/maxScore: >= 90% VeryStrong, >= 75% Strong,
// >= 60% Medium.
func tierFor(score, maxScore int) Tier {
	if maxScore <= 0 {
		return TierWeak
	}

	// integer form of score/maxScore*100 >= threshold
	pct := score * 100
	switch {
	case pct >= 90*maxScore:
		return TierVeryStrong
	case pct >= 75*maxScore:
		return TierStrong
	case pct >= 60*maxScore:
		return TierMedium
	default:
		return TierWeak
	}
}

// Verdict is the outcome of [Engine.Evaluate].
type Verdict struct {
	Valid bool
	// Failed lists failing rules in evaluation order.
	Failed   []RuleID
	Tier     Tier
	Score    int
	MaxScore int
}

// Failing reports whether rule id failed.
func (v Verdict) Failing(id RuleID) bool {
	return slices.Contains(v.Failed, id)
}

// Suggestions returns the descriptions of the failing rules, in order,
// looked up in the engine that produced the verdict.
func (v Verdict) Suggestions(e *Engine) []string {
	out := make([]string, 0, len(v.Failed))
	for _, id := range v.Failed {
		out = append(out, e.Description(id))
	}
	return out
}

// ViolationError reports the rules a password failed. Its message is safe
// to show to the user verbatim.
type ViolationError struct {
	Failed       []RuleID
	Descriptions []string
}

func (e *ViolationError) Error() string {
	if len(e.Descriptions) == 0 {
		return ErrPolicyViolation.Error()
	}
	return ErrPolicyViolation.Error() + ": " + strings.Join(e.Descriptions, "; ")
}

// Is makes errors.Is(err, ErrPolicyViolation) true.
func (e *ViolationError) Is(target error) bool {
	return target == ErrPolicyViolation
}
