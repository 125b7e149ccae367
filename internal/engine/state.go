package engine

import (
	"fmt"

	"agentsim/internal/archetype"
	"agentsim/internal/model"
)

// state is the flat, contiguous tensor backing for N agents. Emotion
// is stored row-major as E[i*A+a]; relations as R[(i*N+j)*4+k] — a
// single contiguous allocation rather than a slice of slices, so a
// full pass over either tensor is one cache-friendly scan instead of
// N chases through pointer indirection.
type state struct {
	n int

	emotion []float64 // n * model.NumEmotionAxes
	relation []float64 // n * n * model.NumRelationChannels

	sensitivity []float64 // n
	emission    []float64 // n * model.NumEmotionAxes * model.NumRelationChannels

	archetypeOf []int
	archetypes  *archetype.Table
}

func newState(n int) *state {
	if n <= 0 {
		panic(fmt.Sprintf("engine: n must be positive, got %d", n))
	}
	sens := make([]float64, n)
	for i := range sens {
		sens[i] = 1.0
	}
	return &state{
		n:           n,
		emotion:     make([]float64, n*int(model.NumEmotionAxes)),
		relation:    make([]float64, n*n*int(model.NumRelationChannels)),
		sensitivity: sens,
		emission:    make([]float64, n*int(model.NumEmotionAxes)*int(model.NumRelationChannels)),
		archetypeOf: make([]int, n),
		archetypes:  archetype.NewTable(),
	}
}

func (s *state) checkAgent(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("engine: agent index %d out of [0,%d)", i, s.n))
	}
}

func (s *state) checkAxis(a model.EmotionAxis) {
	if a < 0 || int(a) >= int(model.NumEmotionAxes) {
		panic(fmt.Sprintf("engine: emotion axis %d out of range", a))
	}
}

func (s *state) checkChannel(k model.RelationChannel) {
	if k < 0 || int(k) >= int(model.NumRelationChannels) {
		panic(fmt.Sprintf("engine: relation channel %d out of range", k))
	}
}

func (s *state) emotionIdx(i int, a model.EmotionAxis) int {
	return i*int(model.NumEmotionAxes) + int(a)
}

func (s *state) relationIdx(i, j int, k model.RelationChannel) int {
	return (i*s.n+j)*int(model.NumRelationChannels) + int(k)
}

// E returns E[i][a].
func (s *state) E(i int, a model.EmotionAxis) float64 {
	s.checkAgent(i)
	s.checkAxis(a)
	return s.emotion[s.emotionIdx(i, a)]
}

func (s *state) setE(i int, a model.EmotionAxis, v float64) {
	s.checkAgent(i)
	s.checkAxis(a)
	s.emotion[s.emotionIdx(i, a)] = v
}

// R returns i's relation toward j on channel k.
func (s *state) R(i, j int, k model.RelationChannel) float64 {
	s.checkAgent(i)
	s.checkAgent(j)
	s.checkChannel(k)
	return s.relation[s.relationIdx(i, j, k)]
}

func (s *state) setR(i, j int, k model.RelationChannel, v float64) {
	s.checkAgent(i)
	s.checkAgent(j)
	s.checkChannel(k)
	if i == j {
		panic("engine: the diagonal R[i][i] is never mutated")
	}
	s.relation[s.relationIdx(i, j, k)] = v
}

func (s *state) Sensitivity(i int) float64 {
	s.checkAgent(i)
	return s.sensitivity[i]
}

func (s *state) setSensitivity(i int, v float64) {
	s.checkAgent(i)
	s.sensitivity[i] = v
}

func (s *state) emissionIdx(i int, a model.EmotionAxis, k model.RelationChannel) int {
	return (i*int(model.NumEmotionAxes)+int(a))*int(model.NumRelationChannels) + int(k)
}

func (s *state) setEmissionWeight(i int, a model.EmotionAxis, k model.RelationChannel, v float64) {
	s.checkAgent(i)
	s.checkAxis(a)
	s.checkChannel(k)
	s.emission[s.emissionIdx(i, a, k)] = v
}

// emissionWeight returns W[i][a][k], the broadcast coefficient used by
// influence_emotions' read phase to push a unit of i's emotion on axis
// a into the perceiver's relation channel k.
func (s *state) emissionWeight(i int, a model.EmotionAxis, k model.RelationChannel) float64 {
	s.checkAgent(i)
	s.checkAxis(a)
	s.checkChannel(k)
	return s.emission[s.emissionIdx(i, a, k)]
}

func (s *state) archetypeConfig(i int) archetype.Config {
	s.checkAgent(i)
	return s.archetypes.Get(s.archetypeOf[i])
}

func (s *state) setAgentArchetype(i, archetypeID int) {
	s.checkAgent(i)
	s.archetypeOf[i] = archetypeID
}
