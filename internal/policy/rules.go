// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RuleID names a policy rule. IDs are stable and safe to show to users.
type RuleID string

const (
	RuleMinLength       RuleID = "min_length"
	RuleMaxLength       RuleID = "max_length"
	RuleUppercase       RuleID = "uppercase"
	RuleLowercase       RuleID = "lowercase"
	RuleDigit           RuleID = "digit"
	RuleSymbol          RuleID = "symbol"
	RuleCommonPattern   RuleID = "common_pattern"
	RuleKeyboardPattern RuleID = "keyboard_pattern"
	RuleRepeatedChars   RuleID = "repeated_chars"
)

// Symbols is the set of characters counted as special characters.
const Symbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?`~"

// CommonPatterns are rejected anywhere in a password, case-insensitively.
var CommonPatterns = []string{
	"123456", "password", "qwerty", "abc", "111111", "000000",
	"admin", "login", "user", "pass", "welcome", "secret",
	"master", "root", "test", "guest", "demo", "default",
	"letmein", "monkey", "dragon", "sunshine", "princess",
	"football", "baseball", "basketball", "soccer",
}

// KeyboardPatterns are keyboard walks and alphabet runs rejected anywhere in
// a password, case-insensitively.
var KeyboardPatterns = []string{
	"qwerty", "asdfgh", "zxcvbn", "qwertz", "azerty",
	"1234567890", "0987654321", "abcdefg", "zyxwvut",
}

// Rule is a single pass/fail password check.
type Rule struct {
	ID RuleID
	// Description is the requirement shown to users when the rule fails.
	Description string
	Check       func(password string) bool
}

// MinLength requires at least n characters (Unicode code points).
func MinLength(n int) Rule {
	return Rule{
		ID:          RuleMinLength,
		Description: fmt.Sprintf("At least %d characters", n),
		Check: func(password string) bool {
			return utf8.RuneCountInString(password) >= n
		},
	}
}

// MaxLength allows at most n characters (Unicode code points).
func MaxLength(n int) Rule {
	return Rule{
		ID:          RuleMaxLength,
		Description: fmt.Sprintf("Maximum %d characters", n),
		Check: func(password string) bool {
			return utf8.RuneCountInString(password) <= n
		},
	}
}

// RequireUppercase requires an ASCII uppercase letter.
func RequireUppercase() Rule {
	return Rule{
		ID:          RuleUppercase,
		Description: "At least one uppercase letter (A-Z)",
		Check:       hasUpper,
	}
}

// RequireLowercase requires an ASCII lowercase letter.
func RequireLowercase() Rule {
	return Rule{
		ID:          RuleLowercase,
		Description: "At least one lowercase letter (a-z)",
		Check:       hasLower,
	}
}

// RequireDigit requires an ASCII digit.
func RequireDigit() Rule {
	return Rule{
		ID:          RuleDigit,
		Description: "At least one number (0-9)",
		Check:       hasDigit,
	}
}

// RequireSymbol requires a character from [Symbols].
func RequireSymbol() Rule {
	return Rule{
		ID:          RuleSymbol,
		Description: "At least one special character (" + Symbols + ")",
		Check:       hasSymbol,
	}
}

// NoCommonPatterns rejects passwords containing any of patterns.
func NoCommonPatterns(patterns []string) Rule {
	return Rule{
		ID:          RuleCommonPattern,
		Description: "Avoid common patterns and dictionary words (password, 123456, admin, etc.)",
		Check:       notContainsAny(patterns),
	}
}

// NoKeyboardPatterns rejects passwords containing any of patterns.
func NoKeyboardPatterns(patterns []string) Rule {
	return Rule{
		ID:          RuleKeyboardPattern,
		Description: "Avoid keyboard patterns (qwerty, asdfgh, 1234567890, etc.)",
		Check:       notContainsAny(patterns),
	}
}

// NoRepeatedChars rejects a character repeated n or more times in a row.
func NoRepeatedChars(n int) Rule {
	return Rule{
		ID:          RuleRepeatedChars,
		Description: fmt.Sprintf("Avoid repeating a character %d or more times (aaa, 111, etc.)", n),
		Check: func(password string) bool {
			return maxRun(password) < n
		},
	}
}

func notContainsAny(patterns []string) func(string) bool {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}

	return func(password string) bool {
		pw := strings.ToLower(password)
		for _, p := range lowered {
			if strings.Contains(pw, p) {
				return false
			}
		}
		return true
	}
}

func maxRun(s string) int {
	longest, run := 0, 0
	var prev rune
	for i, r := range []rune(s) {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		longest = max(longest, run)
	}
	return longest
}

func hasUpper(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' })
}

func hasLower(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' })
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
}

func hasSymbol(s string) bool {
	return strings.ContainsAny(s, Symbols)
}
