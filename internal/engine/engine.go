// Package engine implements the deterministic agent emotion/relation
// simulation: a fixed population of agents whose emotional states and
// directed pairwise relations co-evolve over discrete daily cycles.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"agentsim/internal/archetype"
	"agentsim/internal/model"
	"agentsim/internal/rng"
)

// Engine owns one simulation's full state: the emotion/relation
// tensors, the archetype table, agent names, a private RNG and the
// previous day's interaction log. It is not safe for concurrent calls
// to PerformDailyCycle or any other mutating method from more than one
// goroutine at a time; read-only accessors (Emotion, Relation,
// LastDayInteractions) are safe to call between cycles.
type Engine struct {
	state *state
	rng   rng.Source
	names []string
	log   []model.Interaction

	logger *zap.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a zap logger used for stage-boundary
// diagnostics. The hot per-agent update loops never log; only
// PerformDailyCycle emits a debug line per completed day.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New constructs an Engine for n agents, all emotions and relations
// zeroed, all sensitivities 1.0, seeded from seed.
func New(n int, seed int64, opts ...Option) *Engine {
	e := &Engine{
		state: newState(n),
		rng:   rng.New(seed),
		names: make([]string, n),
	}
	for i := range e.names {
		e.names[i] = fmt.Sprintf("agent-%d", i)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Seed reseeds the engine's private RNG. It does not touch any tensor.
func (e *Engine) Seed(seed int64) {
	e.rng.Seed(seed)
}

// N returns the agent count this engine was constructed with.
func (e *Engine) N() int {
	return e.state.n
}

// SetEmotion sets E[i][a] directly, unclamped — the host is
// responsible for supplying values already in range at setup time.
func (e *Engine) SetEmotion(i int, a model.EmotionAxis, v float64) {
	e.state.setE(i, a, v)
}

// Emotion returns E[i][a].
func (e *Engine) Emotion(i int, a model.EmotionAxis) float64 {
	return e.state.E(i, a)
}

// SetRelation sets i's relation toward j on channel k directly,
// unclamped.
func (e *Engine) SetRelation(i, j int, k model.RelationChannel, v float64) {
	e.state.setR(i, j, k, v)
}

// Relation returns i's relation toward j on channel k.
func (e *Engine) Relation(i, j int, k model.RelationChannel) float64 {
	return e.state.R(i, j, k)
}

// SetSensitivity sets agent i's sensitivity multiplier.
func (e *Engine) SetSensitivity(i int, v float64) {
	e.state.setSensitivity(i, v)
}

// Sensitivity returns agent i's sensitivity multiplier.
func (e *Engine) Sensitivity(i int) float64 {
	return e.state.Sensitivity(i)
}

// SetEmissionWeight sets agent i's emission weight for (axis, channel):
// how strongly a unit of i's emotion on that axis perturbs a
// perceiver's utility/affinity/trust toward i during the group
// influence pass. Responsiveness (channel 3) is never emission-driven.
func (e *Engine) SetEmissionWeight(i int, a model.EmotionAxis, k model.RelationChannel, v float64) {
	e.state.setEmissionWeight(i, a, k, v)
}

// SetArchetypeConfig installs (or replaces) the archetype config at
// id, growing the archetype table as needed.
func (e *Engine) SetArchetypeConfig(id int, cfg archetype.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.state.archetypes.Set(id, cfg)
	return nil
}

// SetAgentArchetype assigns agent i to archetype id. id must already
// be configured via SetArchetypeConfig.
func (e *Engine) SetAgentArchetype(i, id int) {
	if id < 0 || id >= e.state.archetypes.Len() {
		panic(fmt.Sprintf("engine: archetype %d has not been configured", id))
	}
	e.state.setAgentArchetype(i, id)
}

// SetAgentNames installs display names used by the CSV log sink.
// len(names) must equal N().
func (e *Engine) SetAgentNames(names []string) {
	if len(names) != e.state.n {
		panic(fmt.Sprintf("engine: expected %d names, got %d", e.state.n, len(names)))
	}
	copy(e.names, names)
}

// AgentName returns agent i's display name.
func (e *Engine) AgentName(i int) string {
	e.state.checkAgent(i)
	return e.names[i]
}

// InfluenceEmotions runs the group emotional influence pass in
// isolation — exposed for callers that want to drive individual
// stages directly rather than through PerformDailyCycle.
func (e *Engine) InfluenceEmotions() {
	e.influenceEmotions()
}

// ApplyRelationDecay runs the relation decay stage in isolation.
func (e *Engine) ApplyRelationDecay() {
	e.applyRelationDecay()
}

// ApplyEmotionDecay runs the emotion decay stage in isolation.
func (e *Engine) ApplyEmotionDecay() {
	e.applyEmotionDecay()
}

// ReactToRelations runs react_to_relations in isolation: each agent's
// mean relation with the rest of the population nudges its own
// emotions. Exposed for tests and advanced callers.
func (e *Engine) ReactToRelations() {
	e.reactToRelations()
}

// ReactToEmotions runs react_to_emotions in isolation.
func (e *Engine) ReactToEmotions() {
	e.reactToEmotions()
}

// ChooseTarget runs the target-selection policy for agent i in
// isolation, without committing any interaction outcome.
func (e *Engine) ChooseTarget(i int) (int, bool) {
	return e.chooseTarget(i)
}

// ShouldRefuse tests whether j would refuse an interaction initiated
// by i, without committing any state change.
func (e *Engine) ShouldRefuse(i, j int) bool {
	return e.shouldRefuse(i, j)
}

// ProcessInteraction applies the named outcome's relation update for
// an interaction from i to j, without going through the daily-cycle
// orchestrator or the log.
func (e *Engine) ProcessInteraction(i, j int, outcome model.InteractionOutcome) {
	switch outcome {
	case model.OutcomeSuccess:
		e.processSuccess(i, j)
	case model.OutcomeFail:
		e.processFail(i, j)
	case model.OutcomeRefusal:
		e.processRefusal(i, j)
	default:
		panic(fmt.Sprintf("engine: unknown interaction outcome %v", outcome))
	}
}
