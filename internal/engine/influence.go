package engine

import (
	"runtime"
	"sync"

	"agentsim/internal/model"
)

// emittedRelationChannels is the count of relation channels emission
// weights drive during group influence — utility, affinity, trust.
// Responsiveness (channel 3) is never emission-driven; it only moves
// via the fixed +0.05 bump below.
const emittedRelationChannels = 3

const (
	influenceScale      = 0.01
	influenceCommitStep = 0.05
	responsivenessBump  = 0.05
)

// deferredBuffers accumulates the result of the read phase of
// influenceEmotions before anything is written back to shared state.
// Size is fixed per call so multiple shards can each own one and be
// summed deterministically afterward, regardless of how many workers
// ran — the property that makes the stage reproducible across thread
// counts.
type deferredBuffers struct {
	deltaE []float64 // n * model.NumEmotionAxes
	deltaR []float64 // n * n * model.NumRelationChannels
}

func newDeferredBuffers(n int) *deferredBuffers {
	return &deferredBuffers{
		deltaE: make([]float64, n*int(model.NumEmotionAxes)),
		deltaR: make([]float64, n*n*int(model.NumRelationChannels)),
	}
}

func (b *deferredBuffers) addE(n, i int, a model.EmotionAxis, v float64) {
	b.deltaE[i*int(model.NumEmotionAxes)+int(a)] += v
}

func (b *deferredBuffers) addR(n, i, j int, k model.RelationChannel, v float64) {
	b.deltaR[(i*n+j)*int(model.NumRelationChannels)+int(k)] += v
}

// influenceEmotions is the daily group-emotional-influence pass: every
// agent i radiates its emotion vector — split into a primary axis and
// the rest, weighted by each axis's total-normalized share — toward
// every target j that doesn't classify i as avoided, scaled by j's own
// sensitivity and by i's relation toward j. All effects land in
// per-worker deferred buffers during a parallel read phase; a
// single-threaded commit phase then sums the buffers (in a fixed shard
// order) and applies nudge-toward-zero plus clamping exactly once per
// cell, so the result never depends on how many workers happened to
// run the read phase.
func (e *Engine) influenceEmotions() {
	n := e.state.n
	if n <= 1 {
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	shards := make([]*deferredBuffers, workers)
	for w := range shards {
		shards[w] = newDeferredBuffers(n)
	}

	indices := make(chan int, n)
	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		buf := shards[w]
		go func() {
			defer wg.Done()
			for i := range indices {
				e.influenceFrom(i, buf)
			}
		}()
	}
	wg.Wait()

	combined := newDeferredBuffers(n)
	for _, buf := range shards {
		for idx, v := range buf.deltaE {
			combined.deltaE[idx] += v
		}
		for idx, v := range buf.deltaR {
			combined.deltaR[idx] += v
		}
	}

	e.commitDeferred(combined)
}

// influenceFrom computes agent i's contribution to every other agent
// during the read phase, accumulating into buf rather than touching
// shared state.
func (e *Engine) influenceFrom(i int, buf *deferredBuffers) {
	n := e.state.n

	primary := model.EmotionAxis(0)
	maxVal := e.state.E(i, 0)
	var total float64
	for a := model.EmotionAxis(0); int(a) < int(model.NumEmotionAxes); a++ {
		v := e.state.E(i, a)
		total += abs(v)
		if abs(v) > abs(maxVal) {
			maxVal = v
			primary = a
		}
	}
	if maxVal == 0 || total == 0 {
		return
	}

	wPrimary := abs(maxVal) / total
	wOther := (1 - wPrimary) / float64(int(model.NumEmotionAxes)-1)

	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		if classify(e.state.snapshotR(j, i)) == model.ClassAvoid {
			continue
		}

		rel := e.state.snapshotR(i, j)
		effect := (rel.affinity + rel.trust + rel.utility) / 3
		sensJ := e.state.Sensitivity(j)
		common := abs(effect) * sensJ * influenceScale

		for a := model.EmotionAxis(0); int(a) < int(model.NumEmotionAxes); a++ {
			weight := wOther
			if a == primary {
				weight = wPrimary
			}
			delta := e.state.E(i, a) * common * weight
			buf.addE(n, j, a, delta)

			for k := model.RelationChannel(0); int(k) < emittedRelationChannels; k++ {
				w := e.state.emissionWeight(i, a, k)
				buf.addR(n, j, i, k, delta*w*sensJ)
			}
		}

		buf.addR(n, i, j, model.ChannelResponsiveness, responsivenessBump)
		buf.addR(n, j, i, model.ChannelResponsiveness, responsivenessBump)
	}
}

// commitDeferred applies the combined read-phase buffer sequentially:
// every emotion cell is nudged toward zero by the commit step after
// its deferred delta is added — unconditionally, even when that cell
// received no delta this pass, since the commit formula nudges
// `E_k + ΔE_k` as a whole, not the delta in isolation. Relation deltas
// are added and clamped with no such damping. This is the only place
// influenceEmotions writes to shared state.
func (e *Engine) commitDeferred(buf *deferredBuffers) {
	n := e.state.n
	for i := 0; i < n; i++ {
		for a := model.EmotionAxis(0); int(a) < int(model.NumEmotionAxes); a++ {
			d := buf.deltaE[i*int(model.NumEmotionAxes)+int(a)]
			cur := e.state.E(i, a)
			e.state.setE(i, a, clampEmotion(nudgeTowardZero(cur+d, influenceCommitStep)))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for k := model.RelationChannel(0); int(k) < int(model.NumRelationChannels); k++ {
				d := buf.deltaR[(i*n+j)*int(model.NumRelationChannels)+int(k)]
				if d == 0 {
					continue
				}
				e.state.setR(i, j, k, clampRelation(e.state.R(i, j, k)+d))
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
