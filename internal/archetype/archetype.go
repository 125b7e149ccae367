// Package archetype defines the per-archetype behavioural parameters
// that drive decay rates, emotional reactivity and target-selection
// scoring for an agent. Archetype tables are assembled and loaded by
// the host; this package only defines the shape and the scoring
// transform each archetype applies.
package archetype

import (
	"fmt"
	"math"

	"agentsim/internal/model"
)

// Config holds one archetype's tunable behaviour. EmotionCoefficients
// is indexed by model.EmotionAxis and weights how strongly an agent's
// mean relation toward the others nudges each of its own axes in
// react_to_relations. ScoreTransforms holds one tag per relation
// channel (model.RelationChannel order) used when computing a
// priority score over a candidate target.
type Config struct {
	RefusalChance        float64
	DecayRate            float64
	Temperature          float64
	EmotionDecay         float64
	EmotionCoefficients  [model.NumEmotionAxes]float64
	ScoreTransforms      [model.NumRelationChannels]model.ScoreTransform
}

// Validate rejects archetype configs that would make the engine's
// numeric pipeline misbehave (negative rates, non-positive
// temperature). It does not second-guess behavioural tuning choices.
func (c Config) Validate() error {
	if c.RefusalChance < 0 || c.RefusalChance > 1 {
		return fmt.Errorf("archetype: refusal_chance %v out of [0,1]", c.RefusalChance)
	}
	if c.DecayRate < 0 {
		return fmt.Errorf("archetype: decay_rate %v is negative", c.DecayRate)
	}
	if c.EmotionDecay < 0 {
		return fmt.Errorf("archetype: emotion_decay %v is negative", c.EmotionDecay)
	}
	if c.Temperature <= 0 {
		return fmt.Errorf("archetype: temperature %v must be positive", c.Temperature)
	}
	return nil
}

// Apply evaluates the given score transform at v. The transform set
// is closed: linear, log, exp, sigmoid, periodic.
func Apply(tag model.ScoreTransform, v float64) float64 {
	switch tag {
	case model.TransformLinear:
		return v
	case model.TransformLog:
		return math.Copysign(math.Log(math.Abs(v)+1), v)
	case model.TransformExp:
		return math.Exp(v / 5)
	case model.TransformSigmoid:
		return 10 / (1 + math.Exp(-v))
	case model.TransformPeriodic:
		return 5 * math.Sin(v)
	default:
		// An unrecognised tag is a configuration bug, not a runtime
		// condition the engine should silently paper over.
		panic(fmt.Sprintf("archetype: unknown score transform tag %v", tag))
	}
}

// Table maps archetype IDs to their Config. Agents reference an entry
// by integer ID via Engine.SetAgentArchetype.
type Table struct {
	entries []Config
}

// NewTable returns an empty archetype table; entries are appended
// with Set.
func NewTable() *Table {
	return &Table{}
}

// Set installs or replaces the Config at id, growing the table as
// needed (mirrors the auto-resizing archetype vector in the original
// engine's set_archetype_config).
func (t *Table) Set(id int, cfg Config) {
	if id < 0 {
		panic(fmt.Sprintf("archetype: negative archetype id %d", id))
	}
	if id >= len(t.entries) {
		grown := make([]Config, id+1)
		copy(grown, t.entries)
		t.entries = grown
	}
	t.entries[id] = cfg
}

// Get returns the Config for id. It panics if id is out of range: an
// agent assigned to an unconfigured archetype is a host programming
// error, not a recoverable runtime state.
func (t *Table) Get(id int) Config {
	if id < 0 || id >= len(t.entries) {
		panic(fmt.Sprintf("archetype: id %d has no configured entry", id))
	}
	return t.entries[id]
}

// Len reports how many archetype slots are configured.
func (t *Table) Len() int {
	return len(t.entries)
}
