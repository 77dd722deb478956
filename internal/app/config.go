package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rule        int
	Generations int
	Scale       int
	TPS         int
	Seed        int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: 30, Generations: 128, Scale: 4, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule number (0-255, -1 picks a random rule per reset)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "number of generations to evolve")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations revealed per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random rule selection")
}

// SimConfig converts the flags into a simulation factory configuration map.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{"g": strconv.Itoa(c.Generations)}
	if c.Rule < 0 {
		cfg["rule"] = "random"
	} else {
		cfg["rule"] = strconv.Itoa(c.Rule)
	}
	return cfg
}
