package demos

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func (c *Control) validate() error {
	switch c.Kind {
	case KindRange:
		if c.Min > c.Max {
			return fmt.Errorf("min %v greater than max %v", c.Min, c.Max)
		}
		if c.Step < 0 {
			return fmt.Errorf("negative step %v", c.Step)
		}
	case KindSelect:
		if len(c.Options) == 0 {
			return fmt.Errorf("select control has no options")
		}
	case KindBool, KindColor:
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}

	def, err := c.Normalize(c.Default)
	if err != nil {
		return fmt.Errorf("default: %w", err)
	}
	c.Default = def
	return nil
}

// Normalize converts raw into the canonical value for the control: range
// values become float64 clamped to [Min, Max] and snapped to Step, bools
// stay bools, colors become "#rrggbb" strings and selects must name one of
// the options.
func (c *Control) Normalize(raw any) (any, error) {
	switch c.Kind {
	case KindRange:
		v, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a number, got %v", ErrInvalidValue, c.Key, raw)
		}
		return c.Clamp(v), nil

	case KindBool:
		v, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s expects a boolean, got %v", ErrInvalidValue, c.Key, raw)
		}
		return v, nil

	case KindColor:
		v, ok := raw.(string)
		if !ok || !colorPattern.MatchString(v) {
			return nil, fmt.Errorf("%w: %s expects #rrggbb, got %v", ErrInvalidValue, c.Key, raw)
		}
		return v, nil

	case KindSelect:
		v := fmt.Sprint(raw)
		if !slices.Contains(c.Options, v) {
			return nil, fmt.Errorf("%w: %s must be one of %v, got %v", ErrInvalidValue, c.Key, c.Options, raw)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidValue, c.Kind)
}

// Clamp bounds v to [Min, Max] and snaps it to the step grid anchored at
// Min. A zero step disables snapping.
func (c *Control) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return c.Min
	}
	if c.Step > 0 {
		v = c.Min + math.Round((v-c.Min)/c.Step)*c.Step
		// Trim float noise such as 0.30000000000000004.
		v = math.Round(v*1e9) / 1e9
	}
	return math.Max(c.Min, math.Min(c.Max, v))
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
