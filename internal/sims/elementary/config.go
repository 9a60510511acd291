package elementary

import (
	"fmt"
	"strconv"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule         int64
	Neighborhood Neighborhood
	Width        int
	// Limit bounds the tracked window; zero keeps the whole generation.
	Limit int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Rule:         DefaultRule,
		Neighborhood: Neighborhood3,
		Width:        DefaultDisplayWidth,
	}
}

// Validate reports the first invalid field of c.
func (c Config) Validate() error {
	if err := ValidateRule(c.Neighborhood, c.Rule); err != nil {
		return err
	}
	if err := ValidateDisplayWidth(c.Width); err != nil {
		return err
	}
	return ValidateTrackedLimit(c.Limit)
}

// Name returns the registered simulation name for c's neighbourhood.
func (c Config) Name() string {
	if c.Neighborhood == Neighborhood5 {
		return "elementary5"
	}
	return "elementary"
}

// Map is the inverse of FromMap.
func (c Config) Map() map[string]string {
	return map[string]string{
		"bits":  strconv.Itoa(int(c.Neighborhood)),
		"rule":  strconv.FormatInt(c.Rule, 10),
		"width": strconv.Itoa(c.Width),
		"limit": strconv.Itoa(c.Limit),
	}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return applyMap(DefaultConfig(), cfg)
}

func applyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["bits"]; ok {
		if parsed, err := ParseNeighborhood(v); err == nil {
			c.Neighborhood = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && ValidateRule(c.Neighborhood, parsed) == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && ValidateDisplayWidth(parsed) == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && ValidateTrackedLimit(parsed) == nil {
			c.Limit = parsed
		}
	}
	return c
}

// ValidateDisplayWidth checks that width is odd and within bounds.
func ValidateDisplayWidth(width int) error {
	if width%2 == 0 {
		return fmt.Errorf("%w: %d is even", ErrDisplayWidthInvalid, width)
	}
	if width < MinDisplayWidth || width > MaxDisplayWidth {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrDisplayWidthInvalid, width, MinDisplayWidth, MaxDisplayWidth)
	}
	return nil
}

// ValidateTrackedLimit accepts zero or an odd limit of at least MaxDisplayWidth,
// so any display width can still be filled from tracked cells.
func ValidateTrackedLimit(limit int) error {
	if limit == 0 {
		return nil
	}
	if limit < MaxDisplayWidth || limit%2 == 0 {
		return fmt.Errorf("%w: %d must be 0 or an odd value >= %d", ErrTrackedLimitInvalid, limit, MaxDisplayWidth)
	}
	return nil
}
