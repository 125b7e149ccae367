package engine

import "agentsim/internal/model"

// PerformDailyCycle runs one full day: clear the interaction log,
// apply relation decay, let relations react on emotions, apply
// emotion decay, let emotions react on relations, run the group
// influence pass, then iterate nIters rounds over every agent
// attempting one interaction each. Stage order is fixed; the method
// is not reentrant — call it from a single goroutine per engine.
func (e *Engine) PerformDailyCycle(nIters int) {
	e.log = e.log[:0]

	e.applyRelationDecay()
	e.reactToRelations()
	e.applyEmotionDecay()
	e.reactToEmotions()
	e.influenceEmotions()

	for round := 0; round < nIters; round++ {
		for i := 0; i < e.state.n; i++ {
			e.runInteractionAttempt(i)
		}
	}

	if e.logger != nil {
		e.logger.Sugar().Debugw("daily cycle complete", "interactions", len(e.log))
	}
}

// runInteractionAttempt drives one agent's single interaction attempt
// for the round: choose a target, test refusal, apply the outcome. An
// agent with no valid target is treated as a collective refusal — a
// relation penalty is applied against every other agent, since no one
// agreed to engage with it this round.
func (e *Engine) runInteractionAttempt(i int) {
	j, ok := e.chooseTarget(i)
	if !ok {
		for other := 0; other < e.state.n; other++ {
			if other == i {
				continue
			}
			e.processRefusal(i, other)
			e.record(i, other, model.OutcomeRefusal)
		}
		return
	}

	if e.shouldRefuse(i, j) {
		e.processRefusal(i, j)
		e.record(i, j, model.OutcomeRefusal)
		return
	}

	if e.rng.Float64() < 0.5 {
		e.processSuccess(i, j)
		e.record(i, j, model.OutcomeSuccess)
	} else {
		e.processFail(i, j)
		e.record(i, j, model.OutcomeFail)
	}
}

func (e *Engine) record(from, to int, outcome model.InteractionOutcome) {
	e.log = append(e.log, model.Interaction{From: from, To: to, Outcome: outcome})
}

// LastDayInteractions returns a copy of the interactions recorded
// during the most recently completed daily cycle.
func (e *Engine) LastDayInteractions() []model.Interaction {
	out := make([]model.Interaction, len(e.log))
	copy(out, e.log)
	return out
}
