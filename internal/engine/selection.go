package engine

import (
	"math"

	"agentsim/internal/archetype"
	"agentsim/internal/model"
)

const (
	priorityWeightTrust = 1.5
	priorityMuNegative  = 1.5
	priorityMuDefault   = 1.0

	refusalTemperature = 2.0
	refusalBaseRate    = 0.3
	refusalCap         = 0.95
)

// priorityScore weighs a candidate target's relation snapshot through
// the evaluating agent's archetype-specific transforms. Trust is
// weighted 1.5x; responsiveness gets boosted (not penalised) when
// negative — see DESIGN.md open question 2.
func priorityScore(cfg archetype.Config, rel relationSnapshot) float64 {
	a := archetype.Apply(cfg.ScoreTransforms[model.ChannelAffinity], rel.affinity)
	u := archetype.Apply(cfg.ScoreTransforms[model.ChannelUtility], rel.utility)
	t := archetype.Apply(cfg.ScoreTransforms[model.ChannelTrust], rel.trust)
	r := archetype.Apply(cfg.ScoreTransforms[model.ChannelResponsiveness], rel.responsiveness)

	mu := priorityMuDefault
	if rel.responsiveness < 0 {
		mu = priorityMuNegative
	}
	return a + u + priorityWeightTrust*t + mu*r
}

// chooseTarget builds the mandatory/optional candidate pools for
// agent i (excluding avoided targets), prefers mandatory targets when
// any exist, and samples one via softmax-over-priority-score using the
// engine's own RNG. Returns (-1, false) when no valid target exists.
func (e *Engine) chooseTarget(i int) (int, bool) {
	n := e.state.n
	cfg := e.state.archetypeConfig(i)

	var mandatory, optional []int
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		rel := e.state.snapshotR(i, j)
		switch classify(rel) {
		case model.ClassMandatory:
			mandatory = append(mandatory, j)
		case model.ClassOptional:
			optional = append(optional, j)
		}
	}

	pool := mandatory
	if len(pool) == 0 {
		pool = optional
	}
	if len(pool) == 0 {
		return -1, false
	}
	if len(pool) == 1 {
		return pool[0], true
	}

	temperature := cfg.Temperature
	if temperature < 0.01 {
		temperature = 0.01
	}

	scores := make([]float64, len(pool))
	maxScore := math.Inf(-1)
	for idx, j := range pool {
		rel := e.state.snapshotR(i, j)
		scores[idx] = priorityScore(cfg, rel)
		if scores[idx] > maxScore {
			maxScore = scores[idx]
		}
	}

	// Subtracting the max score before exponentiating keeps the softmax
	// numerically stable — without it, a low temperature and a handful
	// of plausible archetype scores can blow exp(s/T) up to +Inf.
	weights := make([]float64, len(pool))
	var total float64
	for idx, s := range scores {
		w := math.Exp((s - maxScore) / temperature)
		weights[idx] = w
		total += w
	}

	u := e.rng.Float64() * total
	var cum float64
	for idx, w := range weights {
		cum += w
		if u <= cum {
			return pool[idx], true
		}
	}
	// Floating-point rounding can leave u fractionally above the final
	// cumulative weight; fall back to the last candidate rather than
	// returning no target.
	return pool[len(pool)-1], true
}

// shouldRefuse tests whether j refuses an interaction initiated by i,
// based on j's archetype refusal_chance and i's responsiveness toward
// j as j perceives it (R[j][i][responsiveness]).
func (e *Engine) shouldRefuse(i, j int) bool {
	rPrime := e.state.R(j, i, model.ChannelResponsiveness)
	p0 := 1 / (1 + math.Exp(rPrime/refusalTemperature))
	cfg := e.state.archetypeConfig(j)
	f := cfg.RefusalChance / refusalBaseRate
	p := p0 * f
	if p > refusalCap {
		p = refusalCap
	}
	return e.rng.Float64() < p
}
