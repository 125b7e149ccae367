package engine

import (
	"runtime"
	"sync"

	"agentsim/internal/model"
)

// applyRelationDecay pulls every relation channel of every agent
// toward zero at a per-archetype, per-sensitivity rate. Channels 0-2
// decay asymmetrically (positive values shrink at half the rate
// negative ones do); responsiveness decays the opposite way
// (positive shrinks 1.5x faster). Both asymmetries are intentional
// archetype-tuning choices, not omissions — see DESIGN.md open
// questions 3 and 4.
func (e *Engine) applyRelationDecay() {
	forEachAgent(e.state.n, func(i int) {
		cfg := e.state.archetypeConfig(i)
		step := cfg.DecayRate * e.state.Sensitivity(i)
		if step == 0 {
			return
		}
		for j := 0; j < e.state.n; j++ {
			if j == i {
				continue
			}
			for k := model.RelationChannel(0); int(k) < int(model.NumRelationChannels); k++ {
				v := e.state.R(i, j, k)
				var shrink float64
				if k == model.ChannelResponsiveness {
					if v > 0 {
						shrink = step * 1.5
					} else {
						shrink = step
					}
				} else {
					if v > 0 {
						shrink = step * 0.5
					} else {
						shrink = step
					}
				}
				e.state.setR(i, j, k, nudgeTowardZero(v, shrink))
			}
		}
	})
}

// applyEmotionDecay pulls every agent's emotion vector toward zero at
// a per-archetype, per-sensitivity rate, symmetric across sign.
func (e *Engine) applyEmotionDecay() {
	forEachAgent(e.state.n, func(i int) {
		cfg := e.state.archetypeConfig(i)
		step := cfg.EmotionDecay * e.state.Sensitivity(i)
		if step == 0 {
			return
		}
		for a := model.EmotionAxis(0); int(a) < int(model.NumEmotionAxes); a++ {
			e.state.setE(i, a, nudgeTowardZero(e.state.E(i, a), step))
		}
	})
}

// forEachAgent runs fn(i) for i in [0,n) across a worker pool sized to
// the host's CPU count, and waits for all to finish. Every per-agent
// body in this package only ever reads and writes agent i's own
// emotion and relation rows, so no two workers ever touch the same
// memory — no locking
// is needed beyond the WaitGroup barrier at the end of the stage.
func forEachAgent(n int, fn func(i int)) {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
