package engine

import (
	"testing"

	"agentsim/internal/archetype"
	"agentsim/internal/model"
)

func testLinearArchetype() archetype.Config {
	cfg := archetype.Config{RefusalChance: 0.3, DecayRate: 0.1, Temperature: 1.0, EmotionDecay: 0.1}
	for k := model.RelationChannel(0); int(k) < int(model.NumRelationChannels); k++ {
		cfg.ScoreTransforms[k] = model.TransformLinear
	}
	return cfg
}

func TestChooseTargetNoCandidatesReturnsFalse(t *testing.T) {
	e := newTestEngine(t, 3)
	// Everyone avoids everyone: responsiveness deep negative.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			e.SetRelation(i, j, model.ChannelResponsiveness, -10)
		}
	}
	_, ok := e.chooseTarget(0)
	if ok {
		t.Error("expected no target when every candidate is avoided")
	}
}

func TestChooseTargetSingleCandidateIsReturnedDirectly(t *testing.T) {
	e := newTestEngine(t, 3)
	// Agent 1 is optional (affinity>=0), agent 2 is avoided.
	e.SetRelation(0, 1, model.ChannelAffinity, 1)
	e.SetRelation(0, 2, model.ChannelResponsiveness, -10)

	target, ok := e.chooseTarget(0)
	if !ok || target != 1 {
		t.Errorf("chooseTarget(0) = (%d,%v), want (1,true)", target, ok)
	}
}

func TestChooseTargetPrefersMandatoryOverOptional(t *testing.T) {
	e := newTestEngine(t, 3)
	// Agent 1: optional only. Agent 2: mandatory.
	e.SetRelation(0, 1, model.ChannelAffinity, 1)
	e.SetRelation(0, 2, model.ChannelTrust, 5)
	e.SetRelation(0, 2, model.ChannelAffinity, 5)
	e.SetRelation(0, 2, model.ChannelResponsiveness, 0)

	target, ok := e.chooseTarget(0)
	if !ok || target != 2 {
		t.Errorf("chooseTarget(0) = (%d,%v), want (2,true) — mandatory pool must win", target, ok)
	}
}

func TestShouldRefuseSaturatesNearCap(t *testing.T) {
	e := newTestEngine(t, 2)
	cfg := e.state.archetypeConfig(1)
	cfg.RefusalChance = 1.0 // f = 1/0.3 ≈ 3.33, caps p at 0.95
	if err := e.SetArchetypeConfig(0, cfg); err != nil {
		t.Fatalf("SetArchetypeConfig: %v", err)
	}
	e.SetAgentArchetype(1, 0)
	e.SetRelation(1, 0, model.ChannelResponsiveness, -10) // p0 near 1

	refusals := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if e.shouldRefuse(0, 1) {
			refusals++
		}
	}
	rate := float64(refusals) / float64(trials)
	if rate < 0.85 {
		t.Errorf("refusal rate = %v, want close to the 0.95 cap", rate)
	}
}

func TestPriorityScoreBoostsNegativeResponsiveness(t *testing.T) {
	cfg := testLinearArchetype()
	negative := priorityScore(cfg, relationSnapshot{responsiveness: -2})
	positive := priorityScore(cfg, relationSnapshot{responsiveness: 2})
	// mu=1.5 on negative vs mu=1.0 on positive means the magnitude of
	// the negative contribution is larger than the positive one, a
	// documented quirk (see DESIGN.md open question 2), not a bug.
	if -negative <= positive {
		t.Errorf("expected |score(-2)| > score(2): got %v vs %v", negative, positive)
	}
}
