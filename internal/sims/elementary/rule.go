package elementary

import (
	"errors"
	"fmt"
)

var (
	// ErrNeighborhood is returned for neighbourhood widths other than 3 and 5.
	ErrNeighborhood = errors.New("unsupported neighborhood")
	// ErrRuleOutOfRange is returned for rule numbers outside [MinRule, MaxRule].
	ErrRuleOutOfRange = errors.New("rule out of range")
	// ErrDisplayWidthInvalid is returned for even or out-of-bounds display widths.
	ErrDisplayWidthInvalid = errors.New("invalid display width")
	// ErrTrackedLimitInvalid is returned for unusable tracked window limits.
	ErrTrackedLimitInvalid = errors.New("invalid tracked limit")
)

// RuleTable maps every neighbourhood pattern to the state it produces. Bit i
// of the rule number is the outcome for pattern i.
type RuleTable struct {
	n        Neighborhood
	number   int64
	outcomes [32]uint8
}

// ValidateRule checks that rule can be decoded for neighbourhood n.
func ValidateRule(n Neighborhood, rule int64) error {
	if !n.Valid() {
		return fmt.Errorf("%w: %d", ErrNeighborhood, int(n))
	}
	if rule < MinRule || rule > n.MaxRule() {
		return fmt.Errorf("%w: %d not in [%d, %d] for %s", ErrRuleOutOfRange, rule, MinRule, n.MaxRule(), n)
	}
	return nil
}

// DecodeRule expands rule into its 2^n outcomes.
func DecodeRule(n Neighborhood, rule int64) (RuleTable, error) {
	if err := ValidateRule(n, rule); err != nil {
		return RuleTable{}, err
	}
	t := RuleTable{n: n, number: rule}
	for i := 0; i < n.Patterns(); i++ {
		t.outcomes[i] = uint8((rule >> uint(i)) & 1)
	}
	return t, nil
}

// Outcome returns the next state (0 or 1) for the given pattern index.
func (t RuleTable) Outcome(pattern int) uint8 { return t.outcomes[pattern] }

// Number returns the rule number the table was decoded from.
func (t RuleTable) Number() int64 { return t.number }

// Neighborhood returns the neighbourhood width the table applies to.
func (t RuleTable) Neighborhood() Neighborhood { return t.n }

// Size returns the number of entries, 2^n.
func (t RuleTable) Size() int { return t.n.Patterns() }

// Uniform returns the state an infinite run of state s evolves into. Only the
// all-0 and all-1 patterns are involved.
func (t RuleTable) Uniform(s uint8) uint8 {
	if s == 0 {
		return t.outcomes[0]
	}
	return t.outcomes[t.Size()-1]
}
