package engine

import "agentsim/internal/model"

const (
	emotionMin = -3.0
	emotionMax = 3.0

	relationMin = -10.0
	relationMax = 10.0
)

func clampEmotion(x float64) float64 {
	if x < emotionMin {
		return emotionMin
	}
	if x > emotionMax {
		return emotionMax
	}
	return x
}

func clampRelation(x float64) float64 {
	if x < relationMin {
		return relationMin
	}
	if x > relationMax {
		return relationMax
	}
	return x
}

// nudgeTowardZero moves x toward 0 by step without overshooting past
// it, the commit-phase counterpart of the decay stages' floor/ceil.
func nudgeTowardZero(x, step float64) float64 {
	if x > 0 {
		x -= step
		if x < 0 {
			x = 0
		}
		return x
	}
	if x < 0 {
		x += step
		if x > 0 {
			x = 0
		}
		return x
	}
	return 0
}

// relationSnapshot is the (u, a, t, r) tuple used by classification
// and priority scoring.
type relationSnapshot struct {
	utility, affinity, trust, responsiveness float64
}

func (s *state) snapshotR(i, j int) relationSnapshot {
	return relationSnapshot{
		utility:        s.R(i, j, model.ChannelUtility),
		affinity:       s.R(i, j, model.ChannelAffinity),
		trust:          s.R(i, j, model.ChannelTrust),
		responsiveness: s.R(i, j, model.ChannelResponsiveness),
	}
}

// classify applies the avoid/mandatory/optional rule from the
// relation-classification rule set. First match wins.
func classify(rel relationSnapshot) model.RelationClass {
	a, t, r := rel.affinity, rel.trust, rel.responsiveness
	if r < -5 {
		return model.ClassAvoid
	}
	if t >= 5 && a >= 5 && r >= 0 {
		return model.ClassMandatory
	}
	if t >= 0 || a >= 0 || r > -5 {
		return model.ClassOptional
	}
	return model.ClassAvoid
}
