package engine

import (
	"testing"

	"agentsim/internal/archetype"
	"agentsim/internal/model"
)

func newTestEngine(t *testing.T, n int) *Engine {
	t.Helper()
	e := New(n, 42)
	cfg := archetype.Config{
		RefusalChance: 0.3,
		DecayRate:     0.2,
		Temperature:   1.0,
		EmotionDecay:  0.2,
	}
	for a := model.EmotionAxis(0); int(a) < int(model.NumEmotionAxes); a++ {
		cfg.EmotionCoefficients[a] = 1.0
	}
	for k := model.RelationChannel(0); int(k) < int(model.NumRelationChannels); k++ {
		cfg.ScoreTransforms[k] = model.TransformLinear
	}
	if err := e.SetArchetypeConfig(0, cfg); err != nil {
		t.Fatalf("SetArchetypeConfig: %v", err)
	}
	for i := 0; i < n; i++ {
		e.SetAgentArchetype(i, 0)
	}
	return e
}

// TestRelationDecayMovesTowardZero is the monotonicity property from
// the testable properties list: repeated decay strictly shrinks the
// magnitude of a nonzero relation value until it settles at zero.
func TestRelationDecayMovesTowardZero(t *testing.T) {
	e := newTestEngine(t, 2)
	e.SetRelation(0, 1, model.ChannelUtility, 8)

	prev := 8.0
	// decay_rate 0.2 shrinks a positive utility by 0.1 per step, so 8
	// needs 80 steps to reach zero.
	for i := 0; i < 100; i++ {
		e.applyRelationDecay()
		cur := e.state.R(0, 1, model.ChannelUtility)
		if cur > prev {
			t.Fatalf("decay step %d: value grew from %v to %v", i, prev, cur)
		}
		if cur < 0 {
			t.Fatalf("decay step %d: overshot zero to %v", i, cur)
		}
		prev = cur
	}
	if prev != 0 {
		t.Errorf("after 100 decay steps, value = %v, want 0", prev)
	}
}

func TestRelationDecayAsymmetricRates(t *testing.T) {
	e := newTestEngine(t, 2)
	e.SetRelation(0, 1, model.ChannelUtility, 4)
	e.SetRelation(0, 1, model.ChannelResponsiveness, 4)
	e.applyRelationDecay()

	// Positive responsiveness shrinks by 1.5x the step, positive utility
	// by 0.5x, so responsiveness decays three times as fast.
	utilAfter := e.state.R(0, 1, model.ChannelUtility)
	respAfter := e.state.R(0, 1, model.ChannelResponsiveness)
	if respAfter >= utilAfter {
		t.Errorf("expected responsiveness (%v) to decay faster than utility (%v) when positive", respAfter, utilAfter)
	}
}

func TestEmotionDecayMovesTowardZero(t *testing.T) {
	e := newTestEngine(t, 2)
	e.SetEmotion(0, model.AxisJoySadness, -2)

	prev := -2.0
	for i := 0; i < 50; i++ {
		e.applyEmotionDecay()
		cur := e.state.E(0, model.AxisJoySadness)
		if cur < prev {
			t.Fatalf("decay step %d: magnitude grew from %v to %v", i, prev, cur)
		}
		prev = cur
	}
	if prev != 0 {
		t.Errorf("after 50 decay steps, value = %v, want 0", prev)
	}
}
