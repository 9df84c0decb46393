// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"slices"
	"unicode/utf8"
)

// bonus points added on top of the passed rule count
const (
	bonusLength16   = 16
	bonusLength20   = 20
	bonusPointCount = 3
)

// Engine evaluates passwords against an ordered rule set. It is immutable
// and safe for concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine returns an [Engine] running rules in the given order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: slices.Clone(rules)}
}

// NewMasterPolicy returns the rule set gating master credentials:
// 12 to 128 characters, all four character classes, no common or keyboard
// patterns and no character repeated three times in a row.
func NewMasterPolicy() *Engine {
	return NewEngine(
		MinLength(12),
		MaxLength(128),
		RequireUppercase(),
		RequireLowercase(),
		RequireDigit(),
		RequireSymbol(),
		NoCommonPatterns(CommonPatterns),
		NoKeyboardPatterns(KeyboardPatterns),
		NoRepeatedChars(3),
	)
}

// NewEntryPolicy returns the advisory rule set for stored secrets: at least
// 8 characters, one digit and one uppercase letter.
func NewEntryPolicy() *Engine {
	return NewEngine(
		MinLength(8),
		RequireDigit(),
		RequireUppercase(),
	)
}

// Rules returns a copy of the engine's rules in evaluation order.
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// Requirements returns every rule description in evaluation order.
func (e *Engine) Requirements() []string {
	out := make([]string, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.Description
	}
	return out
}

// Description returns the description of rule id, or the id itself when
// the engine has no such rule.
func (e *Engine) Description(id RuleID) string {
	for _, r := range e.rules {
		if r.ID == id {
			return r.Description
		}
	}
	return string(id)
}

// MaxScore is the best achievable score.
func (e *Engine) MaxScore() int {
	return len(e.rules) + bonusPointCount
}

// Evaluate checks password against every rule. It is pure and deterministic.
func (e *Engine) Evaluate(password string) Verdict {
	var failed []RuleID
	passed := 0
	for _, r := range e.rules {
		if r.Check(password) {
			passed++
			continue
		}
		failed = append(failed, r.ID)
	}

	score := passed + bonus(password)
	maxScore := e.MaxScore()

	return Verdict{
		Valid:    len(failed) == 0,
		Failed:   failed,
		Tier:     tierFor(score, maxScore),
		Score:    score,
		MaxScore: maxScore,
	}
}

// Check returns nil when password satisfies every rule and a
// *ViolationError otherwise.
func (e *Engine) Check(password string) error {
	v := e.Evaluate(password)
	if v.Valid {
		return nil
	}
	return e.violation(v)
}

func (e *Engine) violation(v Verdict) *ViolationError {
	return &ViolationError{
		Failed:       slices.Clone(v.Failed),
		Descriptions: v.Suggestions(e),
	}
}

func bonus(password string) int {
	n := utf8.RuneCountInString(password)
	points := 0
	if n >= bonusLength16 {
		points++
	}
	if n >= bonusLength20 {
		points++
	}
	if hasUpper(password) && hasLower(password) && hasDigit(password) && hasSymbol(password) {
		points++
	}
	return points
}
