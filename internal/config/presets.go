package config

import "sort"

var Presets = map[string]map[string]*Config{
	"quadratic": {
		"bracket": preset(func(c *Config) {
			c.Equation, c.Method = "quadratic", "bisection"
			c.Interval = IntervalConfig{A: 0, B: 10}
		}),
		"chord": preset(func(c *Config) {
			c.Equation, c.Method = "quadratic", "secant"
			c.Secant.X0, c.Secant.X1 = 0, 10
		}),
		"tangent": preset(func(c *Config) {
			c.Equation, c.Method = "quadratic", "newton"
			c.Newton.Guess = 5
		}),
		"flat": preset(func(c *Config) {
			c.Equation, c.Method = "quadratic", "newton"
			c.Newton.Guess = 0
		}),
		"negative": preset(func(c *Config) {
			c.Equation, c.Method = "quadratic", "bisection"
			c.Interval = IntervalConfig{A: -10, B: 0}
		}),
	},
	"cubic": {
		"bracket": preset(func(c *Config) {
			c.Equation, c.Method = "cubic", "bisection"
			c.Interval = IntervalConfig{A: 2, B: 3}
		}),
		"tangent": preset(func(c *Config) {
			c.Equation, c.Method = "cubic", "newton"
			c.Newton.Guess = 2
		}),
	},
	"cosine": {
		"bracket": preset(func(c *Config) {
			c.Equation, c.Method = "cosine", "bisection"
			c.Interval = IntervalConfig{A: 0, B: 1}
		}),
		"chord": preset(func(c *Config) {
			c.Equation, c.Method = "cosine", "secant"
			c.Secant.X0, c.Secant.X1 = 0, 1
		}),
		"precise": preset(func(c *Config) {
			c.Equation, c.Method = "cosine", "newton"
			c.Newton.Guess = 1
			c.Epsilon = 1e-12
		}),
	},
}

func preset(apply func(c *Config)) *Config {
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(equation, name string) *Config {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	cfg, ok := eqPresets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(equation string) []string {
	eqPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(eqPresets))
	for name := range eqPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
