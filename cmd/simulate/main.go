// Command simulate is a minimal demo host: it wires together a
// simulation engine, a handful of archetypes, a CSV log sink and an
// in-memory day-history buffer, then runs a fixed number of daily
// cycles. It is not a general-purpose CLI — orchestration glue beyond
// this smoke-test loop is left to whatever system embeds the engine.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"agentsim/internal/archetype"
	"agentsim/internal/config"
	"agentsim/internal/engine"
	"agentsim/internal/history"
	"agentsim/internal/logger"
	"agentsim/internal/model"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML RuntimeConfig (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			zap.S().Fatalw("failed to load config", "error", err)
		}
		cfg = loaded
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		zap.S().Fatalw("failed to build logger", "error", err)
	}
	defer zlog.Sync()
	sugar := zlog.Sugar()

	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		sugar.Fatalw("failed to create log dir", "dir", cfg.LogDir, "error", err)
	}

	eng := engine.New(cfg.NumAgents, cfg.Seed, engine.WithLogger(zlog))
	seedArchetypes(eng)

	buffer := history.NewRingBuffer(30)

	statesPath := filepath.Join(cfg.LogDir, "states.csv")
	interactionsPath := filepath.Join(cfg.LogDir, "interactions.csv")

	sugar.Infow("starting simulation", "agents", cfg.NumAgents, "days", cfg.Days, "seed", cfg.Seed)

	for day := 0; day < cfg.Days; day++ {
		eng.PerformDailyCycle(cfg.InteractionsPerDay)

		dateStr := time.Unix(0, 0).UTC().AddDate(0, 0, day).Format("2006-01-02")
		isFirstRun := day == 0

		logger.SaveStatesCSV(eng, statesPath, dateStr, isFirstRun)
		names := make([]string, eng.N())
		for i := range names {
			names[i] = eng.AgentName(i)
		}
		logger.SaveInteractionsCSV(eng.LastDayInteractions(), names, interactionsPath, dateStr, isFirstRun)

		buffer.Add(summarize(day, eng))
		sugar.Infow("day complete", "day", day, "interactions", len(eng.LastDayInteractions()))
	}

	sugar.Infow("simulation finished", "days_in_history", buffer.Size())
}

// seedArchetypes installs a small, fixed set of archetypes so the
// demo binary can run standalone. A real host loads these from its
// own configuration; archetype definitions are explicitly outside the
// engine's concern.
func seedArchetypes(eng *engine.Engine) {
	cautious := archetype.Config{
		RefusalChance: 0.4,
		DecayRate:     0.05,
		Temperature:   0.8,
		EmotionDecay:  0.1,
		ScoreTransforms: [model.NumRelationChannels]model.ScoreTransform{
			model.ChannelUtility:        model.TransformLinear,
			model.ChannelAffinity:       model.TransformSigmoid,
			model.ChannelTrust:          model.TransformLog,
			model.ChannelResponsiveness: model.TransformLinear,
		},
	}
	cautious.EmotionCoefficients[model.AxisJoySadness] = 1.0
	cautious.EmotionCoefficients[model.AxisFearCalm] = 1.2
	cautious.EmotionCoefficients[model.AxisAngerHumility] = 0.8
	cautious.EmotionCoefficients[model.AxisDisgustAcceptance] = 0.6
	cautious.EmotionCoefficients[model.AxisOpennessAlienation] = 0.5

	outgoing := archetype.Config{
		RefusalChance: 0.1,
		DecayRate:     0.1,
		Temperature:   1.5,
		EmotionDecay:  0.15,
		ScoreTransforms: [model.NumRelationChannels]model.ScoreTransform{
			model.ChannelUtility:        model.TransformExp,
			model.ChannelAffinity:       model.TransformLinear,
			model.ChannelTrust:          model.TransformLinear,
			model.ChannelResponsiveness: model.TransformPeriodic,
		},
	}
	outgoing.EmotionCoefficients[model.AxisJoySadness] = 1.4
	outgoing.EmotionCoefficients[model.AxisAngerHumility] = 0.4
	outgoing.EmotionCoefficients[model.AxisOpennessAlienation] = 1.2

	if err := eng.SetArchetypeConfig(0, cautious); err != nil {
		zap.S().Fatalw("invalid archetype", "id", 0, "error", err)
	}
	if err := eng.SetArchetypeConfig(1, outgoing); err != nil {
		zap.S().Fatalw("invalid archetype", "id", 1, "error", err)
	}
	for i := 0; i < eng.N(); i++ {
		eng.SetAgentArchetype(i, i%2)
	}
}

func summarize(day int, eng *engine.Engine) history.DaySummary {
	s := history.DaySummary{Day: day}
	n := eng.N()
	for a := model.EmotionAxis(0); int(a) < int(model.NumEmotionAxes); a++ {
		var total float64
		for i := 0; i < n; i++ {
			total += eng.Emotion(i, a)
		}
		if n > 0 {
			s.MeanEmotion[a] = total / float64(n)
		}
	}
	for _, in := range eng.LastDayInteractions() {
		switch in.Outcome {
		case model.OutcomeSuccess:
			s.SuccessCount++
		case model.OutcomeFail:
			s.FailCount++
		case model.OutcomeRefusal:
			s.RefusalCount++
		}
	}
	return s
}
