package engine

import (
	"testing"

	"agentsim/internal/model"
)

// TestIsolatedAgentTriggersCollectiveRefusalPenalty covers the
// isolated-agent edge case: an agent with no mandatory or optional
// target (every other agent avoided) is penalised against everyone
// once per round, and every one of those penalties is logged as a
// refusal.
func TestIsolatedAgentTriggersCollectiveRefusalPenalty(t *testing.T) {
	e := newTestEngine(t, 4)
	for j := 1; j < 4; j++ {
		// -6 is below the avoid threshold of -5 but leaves room above the
		// -10 clamp for the penalty to show.
		e.SetRelation(0, j, model.ChannelResponsiveness, -6)
	}
	before := e.state.R(0, 1, model.ChannelResponsiveness)

	e.runInteractionAttempt(0)

	for j := 1; j < 4; j++ {
		if got := e.state.R(0, j, model.ChannelResponsiveness); got >= before {
			t.Errorf("expected penalty against agent %d, R stayed at %v", j, got)
		}
	}
	if len(e.log) != 3 {
		t.Fatalf("expected 3 recorded refusals for the isolated agent, got %d", len(e.log))
	}
	for _, in := range e.log {
		if in.From != 0 || in.Outcome != model.OutcomeRefusal {
			t.Errorf("unexpected log entry %+v", in)
		}
	}
}

func TestPerformDailyCycleClearsLogEachDay(t *testing.T) {
	e := newTestEngine(t, 5)
	e.SetRelation(0, 1, model.ChannelAffinity, 1)
	e.SetRelation(1, 0, model.ChannelAffinity, 1)

	e.PerformDailyCycle(2)
	first := len(e.LastDayInteractions())
	if first == 0 {
		t.Fatal("expected at least one recorded interaction on day 1")
	}

	e.PerformDailyCycle(2)
	second := e.LastDayInteractions()
	if len(second) == 0 {
		t.Fatal("expected at least one recorded interaction on day 2")
	}
	// The log is cleared, not accumulated, at the start of each cycle.
	if len(second) > 5*2 {
		t.Errorf("log looks accumulated across days: got %d entries", len(second))
	}
}

func TestPerformDailyCycleKeepsTensorsInBounds(t *testing.T) {
	e := newTestEngine(t, 6)
	for i := 0; i < 6; i++ {
		e.SetEmotion(i, model.AxisJoySadness, 2.9)
		for j := 0; j < 6; j++ {
			if i == j {
				continue
			}
			e.SetRelation(i, j, model.ChannelTrust, 9.9)
		}
	}

	for day := 0; day < 10; day++ {
		e.PerformDailyCycle(3)
	}

	for i := 0; i < 6; i++ {
		for a := model.EmotionAxis(0); int(a) < int(model.NumEmotionAxes); a++ {
			v := e.Emotion(i, a)
			if v < emotionMin || v > emotionMax {
				t.Fatalf("E[%d][%v] = %v out of bounds after 10 days", i, a, v)
			}
		}
		for j := 0; j < 6; j++ {
			if i == j {
				continue
			}
			for k := model.RelationChannel(0); int(k) < int(model.NumRelationChannels); k++ {
				v := e.Relation(i, j, k)
				if v < relationMin || v > relationMax {
					t.Fatalf("R[%d][%d][%v] = %v out of bounds after 10 days", i, j, k, v)
				}
			}
		}
	}
}
