package engine

import (
	"gonum.org/v1/gonum/floats"

	"agentsim/internal/model"
)

// reactToRelations lets each agent's perception of its average
// relation with everyone else nudge its own emotions: the mean of
// utility, affinity and trust over all other agents, scaled by the
// archetype's per-axis emotion coefficients.
func (e *Engine) reactToRelations() {
	n := e.state.n
	forEachAgent(n, func(i int) {
		if n <= 1 {
			return
		}
		u := make([]float64, 0, n-1)
		a := make([]float64, 0, n-1)
		t := make([]float64, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			u = append(u, e.state.R(i, j, model.ChannelUtility))
			a = append(a, e.state.R(i, j, model.ChannelAffinity))
			t = append(t, e.state.R(i, j, model.ChannelTrust))
		}
		mean := (floats.Sum(u) + floats.Sum(a) + floats.Sum(t)) / float64(3*len(u))

		cfg := e.state.archetypeConfig(i)
		sens := e.state.Sensitivity(i)
		for axis := model.EmotionAxis(0); int(axis) < int(model.NumEmotionAxes); axis++ {
			delta := mean * cfg.EmotionCoefficients[axis] * 0.05 * sens
			e.state.setE(i, axis, clampEmotion(e.state.E(i, axis)+delta))
		}
	})
}

const reactToEmotionsK = 0.3
const reactToEmotionsThreshold = 0.1

// reactToEmotions lets each agent's own emotional state bleed into its
// own outgoing relation toward every other agent, per the fixed
// per-axis routing table: joy/sadness moves affinity, fear/calm moves
// trust, anger/humility moves trust (doubled when negative — anger
// erodes trust faster than calm builds it), disgust/acceptance moves
// both affinity and utility, openness/alienation moves both affinity
// and trust. Surprise/habit and shame/confidence do not emit relation
// pressure.
func (e *Engine) reactToEmotions() {
	n := e.state.n
	forEachAgent(n, func(i int) {
		sens := e.state.Sensitivity(i)
		for axis := model.EmotionAxis(0); int(axis) < int(model.NumEmotionAxes); axis++ {
			v := e.state.E(i, axis)
			if v > -reactToEmotionsThreshold && v < reactToEmotionsThreshold {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				switch axis {
				case model.AxisJoySadness:
					e.bumpRelation(i, j, model.ChannelAffinity, v*reactToEmotionsK*sens)
				case model.AxisFearCalm:
					e.bumpRelation(i, j, model.ChannelTrust, v*reactToEmotionsK*sens)
				case model.AxisAngerHumility:
					f := 1.0
					if v < 0 {
						f = 2.0
					}
					e.bumpRelation(i, j, model.ChannelTrust, v*reactToEmotionsK*f*sens)
				case model.AxisDisgustAcceptance:
					e.bumpRelation(i, j, model.ChannelAffinity, v*reactToEmotionsK*sens)
					e.bumpRelation(i, j, model.ChannelUtility, v*reactToEmotionsK*sens)
				case model.AxisOpennessAlienation:
					e.bumpRelation(i, j, model.ChannelAffinity, v*reactToEmotionsK*sens)
					e.bumpRelation(i, j, model.ChannelTrust, v*reactToEmotionsK*sens)
				default:
					// AxisSurpriseHabit, AxisShameConfidence: no relation emission.
				}
			}
		}
	})
}

// bumpRelation adds delta to i's relation toward j — the emoting
// agent's own outgoing view — and clamps.
func (e *Engine) bumpRelation(i, j int, ch model.RelationChannel, delta float64) {
	e.state.setR(i, j, ch, clampRelation(e.state.R(i, j, ch)+delta))
}
