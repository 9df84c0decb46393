// Package policy evaluates password strength.
//
// An [Engine] runs an ordered list of [Rule] checks and reports a [Verdict]:
// whether every rule passed, which rules failed, and a strength [Tier]
// computed from the passed rules plus length and character class bonuses.
// Validity and tier are independent, callers decide whether to gate on
// Verdict.Valid or only show the tier.
//
// [NewMasterPolicy] is the rule set gating master credentials.
// [NewEntryPolicy] is a weaker, advisory set for stored secrets.
package policy
