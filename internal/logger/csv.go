// Package logger implements the two CSV export formats the host uses
// to persist a day's agent states and interactions. Both writers are
// synchronous, best-effort: an I/O failure is logged and swallowed,
// never surfaced to the caller, since a failed log write must not
// interrupt the simulation it is observing.
package logger

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"agentsim/internal/engine"
	"agentsim/internal/model"
)

const bufSize = 1 << 16 // 64KB — plenty for one day's rows at a time

var emotionAxisOrder = [...]model.EmotionAxis{
	model.AxisJoySadness,
	model.AxisFearCalm,
	model.AxisAngerHumility,
	model.AxisDisgustAcceptance,
	model.AxisSurpriseHabit,
	model.AxisShameConfidence,
	model.AxisOpennessAlienation,
}

var relationChannelOrder = [...]model.RelationChannel{
	model.ChannelUtility,
	model.ChannelAffinity,
	model.ChannelTrust,
	model.ChannelResponsiveness,
}

// SaveStatesCSV appends (or, on isFirstRun, truncates and writes the
// header for) one row per agent describing its current emotion vector
// and its relation toward every other agent, to path.
func SaveStatesCSV(e *engine.Engine, path, dateStr string, isFirstRun bool) {
	f, writer, ok := openCSV(path, isFirstRun, "Дата,Имя агента,Эмоции,Предикаты")
	if !ok {
		return
	}
	defer closeCSV(f, writer)

	day := shortDate(dateStr)
	n := e.N()
	for i := 0; i < n; i++ {
		emotions := formatEmotions(e, i)
		predicates := formatPredicates(e, i, n)
		fmt.Fprintf(writer, "%s,%s,%s,\"%s\"\n", day, e.AgentName(i), emotions, predicates)
	}
}

func formatEmotions(e *engine.Engine, i int) string {
	parts := make([]string, 0, len(emotionAxisOrder))
	for _, a := range emotionAxisOrder {
		parts = append(parts, fmt.Sprintf("%s:%.4f", a.String(), e.Emotion(i, a)))
	}
	return strings.Join(parts, "; ")
}

func formatPredicates(e *engine.Engine, i, n int) string {
	parts := make([]string, 0, n-1)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		channels := make([]string, 0, len(relationChannelOrder))
		for _, k := range relationChannelOrder {
			channels = append(channels, fmt.Sprintf("%s:%.4f", k.String(), e.Relation(i, j, k)))
		}
		parts = append(parts, fmt.Sprintf("%s=%s", e.AgentName(j), strings.Join(channels, ",")))
	}
	return strings.Join(parts, " | ")
}

// SaveInteractionsCSV appends (or, on isFirstRun, truncates and writes
// the header for) one row per recorded interaction to path.
func SaveInteractionsCSV(interactions []model.Interaction, names []string, path, dateStr string, isFirstRun bool) {
	f, writer, ok := openCSV(path, isFirstRun, "Дата,Источник,Цель,Успех")
	if !ok {
		return
	}
	defer closeCSV(f, writer)

	day := shortDate(dateStr)
	for _, in := range interactions {
		fmt.Fprintf(writer, "%s,%s,%s,%s\n", day, names[in.From], names[in.To], in.Outcome.String())
	}
}

func shortDate(dateStr string) string {
	if len(dateStr) > 10 {
		return dateStr[:10]
	}
	return dateStr
}

func openCSV(path string, isFirstRun bool, header string) (*os.File, *bufio.Writer, bool) {
	flags := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if isFirstRun {
		flags = os.O_TRUNC | os.O_CREATE | os.O_WRONLY
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		log.Printf("logger: failed to open %s: %v", path, err)
		return nil, nil, false
	}
	writer := bufio.NewWriterSize(f, bufSize)
	if isFirstRun {
		fmt.Fprintln(writer, header)
	}
	return f, writer, true
}

func closeCSV(f *os.File, w *bufio.Writer) {
	if err := w.Flush(); err != nil {
		log.Printf("logger: flush failed: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Printf("logger: close failed: %v", err)
	}
}
