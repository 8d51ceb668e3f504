package planner

// Effort sizes accepted by task sources.
const (
	EffortSmall  = "S"
	EffortMedium = "M"
	EffortLarge  = "L"
)

// Weights are the coefficients of the scoring formula.
type Weights struct {
	Urgency        float64 `json:"urgency" yaml:"urgency"`
	Importance     float64 `json:"importance" yaml:"importance"`
	QuickWinBonus  float64 `json:"quickwin_bonus" yaml:"quickwin_bonus"`
	BlockedPenalty float64 `json:"blocked_penalty" yaml:"blocked_penalty"`
}

// Config drives scoring and bucketing. It is passed explicitly on every call;
// the package keeps no mutable state.
type Config struct {
	Weights        Weights
	EffortDefaults map[string]int // symbolic size (S/M/L) -> minutes
	ImpactMap      map[string]int // low/medium/high -> 1..3
	TopCount       int
	NextCount      int
}

// DefaultConfig returns the stock weights, effort sizes, impact map and bucket sizes.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Urgency:        2.0,
			Importance:     3.0,
			QuickWinBonus:  1.0,
			BlockedPenalty: 5.0,
		},
		EffortDefaults: map[string]int{
			EffortSmall:  15,
			EffortMedium: 45,
			EffortLarge:  90,
		},
		ImpactMap: map[string]int{
			"low":    1,
			"medium": 2,
			"high":   3,
		},
		TopCount:  3,
		NextCount: 5,
	}
}

// DefaultEffort is the effort used when a source cannot read one.
func (c Config) DefaultEffort() int {
	if m, ok := c.EffortDefaults[EffortMedium]; ok {
		return m
	}
	return DefaultConfig().EffortDefaults[EffortMedium]
}

// DefaultImpact is the impact used for empty or unknown impact text.
func (c Config) DefaultImpact() int {
	if m, ok := c.ImpactMap["medium"]; ok {
		return m
	}
	return 2
}

// Assumptions is the configuration snapshot embedded in every Plan.
type Assumptions struct {
	EffortDefaultsMin map[string]int `json:"effort_defaults_min" yaml:"effort_defaults_min"`
	ImpactMap         map[string]int `json:"impact_map" yaml:"impact_map"`
	Weights           Weights        `json:"weights" yaml:"weights"`
	TopCount          int            `json:"top_count" yaml:"top_count"`
	NextCount         int            `json:"next_count" yaml:"next_count"`
}

func (c Config) assumptions() Assumptions {
	return Assumptions{
		EffortDefaultsMin: copyMap(c.EffortDefaults),
		ImpactMap:         copyMap(c.ImpactMap),
		Weights:           c.Weights,
		TopCount:          c.TopCount,
		NextCount:         c.NextCount,
	}
}

func copyMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
