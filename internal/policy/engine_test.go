package policy

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterPolicy_RuleOrder(t *testing.T) {
	var ids []RuleID
	for _, r := range NewMasterPolicy().Rules() {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []RuleID{
		RuleMinLength,
		RuleMaxLength,
		RuleUppercase,
		RuleLowercase,
		RuleDigit,
		RuleSymbol,
		RuleCommonPattern,
		RuleKeyboardPattern,
		RuleRepeatedChars,
	}, ids)
	assert.Equal(t, 12, NewMasterPolicy().MaxScore())
}

func TestMasterPolicy_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		wantValid  bool
		wantFailed []RuleID
		wantTier   Tier
		wantScore  int
	}{
		{
			name:      "passphrase with all classes",
			password:  "Coffee&Books@2024!",
			wantValid: true,
			wantTier:  TierVeryStrong,
			wantScore: 11,
		},
		{
			name:       "too short",
			password:   "Sh0rt!",
			wantFailed: []RuleID{RuleMinLength},
			wantTier:   TierStrong,
			wantScore:  9,
		},
		{
			name:       "deny-listed word",
			password:   "password123456",
			wantFailed: []RuleID{RuleUppercase, RuleSymbol, RuleCommonPattern},
			wantTier:   TierWeak,
			wantScore:  6,
		},
		{
			name:       "keyboard walk",
			password:   "Zxcvbn!9Lk-Rt",
			wantFailed: []RuleID{RuleKeyboardPattern},
			wantTier:   TierStrong,
			wantScore:  9,
		},
		{
			name:       "repeated characters",
			password:   "Glory!!!7Worth",
			wantFailed: []RuleID{RuleRepeatedChars},
			wantTier:   TierStrong,
			wantScore:  9,
		},
		{
			name:      "long passphrase",
			password:  "Correct-Horse-Battery-9-Staple",
			wantValid: true,
			wantTier:  TierVeryStrong,
			wantScore: 12,
		},
		{
			name:       "empty",
			password:   "",
			wantFailed: []RuleID{RuleMinLength, RuleUppercase, RuleLowercase, RuleDigit, RuleSymbol},
			wantTier:   TierWeak,
			wantScore:  4,
		},
	}

	engine := NewMasterPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := engine.Evaluate(tt.password)

			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, tt.wantFailed, v.Failed)
			assert.Equal(t, tt.wantTier, v.Tier)
			assert.Equal(t, tt.wantScore, v.Score)
			assert.Equal(t, 12, v.MaxScore)
		})
	}
}

// TestMasterPolicy_StrongButInvalid shows that tier and validity are
// independent outputs.
func TestMasterPolicy_StrongButInvalid(t *testing.T) {
	v := NewMasterPolicy().Evaluate("MySecret#2024Vault!X")

	assert.False(t, v.Valid)
	assert.Equal(t, []RuleID{RuleCommonPattern}, v.Failed)
	assert.Equal(t, TierVeryStrong, v.Tier)
}

func TestMasterPolicy_CaseInsensitivePatterns(t *testing.T) {
	engine := NewMasterPolicy()

	assert.True(t, engine.Evaluate("xx-PaSsWoRd-9Z!").Failing(RuleCommonPattern))
	assert.True(t, engine.Evaluate("Hey!9QWERTYtop").Failing(RuleKeyboardPattern))
}

func TestMasterPolicy_LengthCountsRunes(t *testing.T) {
	engine := NewMasterPolicy()

	// 11 runes, more than 12 bytes
	v := engine.Evaluate("Пароль!9Ab-")
	assert.True(t, v.Failing(RuleMinLength))

	long := "Aa1!" + strings.Repeat("ёж", 62) // 128 runes
	assert.False(t, engine.Evaluate(long).Failing(RuleMaxLength))
	assert.True(t, engine.Evaluate(long+"x").Failing(RuleMaxLength))
}

func TestMasterPolicy_DigitIsASCII(t *testing.T) {
	// Arabic-Indic digits do not count
	v := NewMasterPolicy().Evaluate("Warm-Cocoa-Mug-٣٤!")
	assert.True(t, v.Failing(RuleDigit))
}

// TestMasterPolicy_Monotonicity appends the one missing class to passwords
// failing only that rule and expects them to become valid.
func TestMasterPolicy_Monotonicity(t *testing.T) {
	engine := NewMasterPolicy()

	tests := []struct {
		base    string
		missing RuleID
		add     string
	}{
		{"coffee&books@2024!", RuleUppercase, "Q"},
		{"COFFEE&BOOKS@2024!", RuleLowercase, "q"},
		{"Coffee&Books@Tonight!", RuleDigit, "7"},
		{"CoffeeBooks2024Xz", RuleSymbol, "#"},
	}

	for _, tt := range tests {
		t.Run(string(tt.missing), func(t *testing.T) {
			before := engine.Evaluate(tt.base)
			require.Equal(t, []RuleID{tt.missing}, before.Failed)

			after := engine.Evaluate(tt.base + tt.add)
			assert.True(t, after.Valid)
			assert.GreaterOrEqual(t, after.Score, before.Score)
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	engine := NewMasterPolicy()
	for _, pw := range []string{"Coffee&Books@2024!", "Sh0rt!", "password123456"} {
		assert.Equal(t, engine.Evaluate(pw), engine.Evaluate(pw))
	}
}

func TestEntryPolicy(t *testing.T) {
	engine := NewEntryPolicy()

	v := engine.Evaluate("x7!Qz2@Lm")
	assert.True(t, v.Valid)
	assert.Equal(t, 6, v.MaxScore)

	v = engine.Evaluate("abc")
	assert.False(t, v.Valid)
	assert.Equal(t, []RuleID{RuleMinLength, RuleDigit, RuleUppercase}, v.Failed)
	assert.Equal(t, []string{
		"At least 8 characters",
		"At least one number (0-9)",
		"At least one uppercase letter (A-Z)",
	}, v.Suggestions(engine))
}

func TestEngine_Check(t *testing.T) {
	engine := NewMasterPolicy()

	assert.NoError(t, engine.Check("Coffee&Books@2024!"))

	err := engine.Check("Sh0rt!")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPolicyViolation)

	var violation *ViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, []RuleID{RuleMinLength}, violation.Failed)
	assert.Equal(t, "password does not meet policy: At least 12 characters", err.Error())
}

func TestEngine_Requirements(t *testing.T) {
	req := NewMasterPolicy().Requirements()

	require.Len(t, req, 9)
	assert.Equal(t, "At least 12 characters", req[0])
	assert.Equal(t, "Maximum 128 characters", req[1])
	assert.Equal(t, "At least one special character ("+Symbols+")", req[5])
}

func TestEngine_RulesIsCopy(t *testing.T) {
	engine := NewMasterPolicy()
	rules := engine.Rules()
	rules[0] = MinLength(1)

	assert.True(t, engine.Evaluate("Ab1!").Failing(RuleMinLength))
}

func TestEngine_DescriptionUnknown(t *testing.T) {
	assert.Equal(t, "nope", NewEntryPolicy().Description("nope"))
}
