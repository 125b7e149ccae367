package history

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"agentsim/internal/model"
)

// LoadInteractionsCSV replays every interaction row from a previously
// written interactions CSV (see logger.SaveInteractionsCSV) into
// summarised per-day buckets, so a restarted host can repopulate its
// RingBuffer without re-running the days that produced them.
// Malformed rows are skipped, not fatal; a read error other than a
// parse error ends the replay with the days read so far. This is a
// best-effort convenience layer, not a source of truth for the engine.
func LoadInteractionsCSV(path string) []DaySummary {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReaderSize(f, 1<<16))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	dateCol, dateOK := idx["Дата"]
	srcCol, srcOK := idx["Источник"]
	outcomeCol, outcomeOK := idx["Успех"]
	if !dateOK || !srcOK || !outcomeOK {
		return nil
	}

	byDay := map[string]*DaySummary{}
	order := []string{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			break
		}
		if dateCol >= len(row) || srcCol >= len(row) || outcomeCol >= len(row) {
			continue
		}
		day := row[dateCol]
		summary, ok := byDay[day]
		if !ok {
			summary = &DaySummary{}
			byDay[day] = summary
			order = append(order, day)
		}
		switch row[outcomeCol] {
		case model.OutcomeSuccess.String():
			summary.SuccessCount++
		case model.OutcomeFail.String():
			summary.FailCount++
		case model.OutcomeRefusal.String():
			summary.RefusalCount++
		}
	}

	out := make([]DaySummary, 0, len(order))
	for i, day := range order {
		s := *byDay[day]
		s.Day = i
		out = append(out, s)
	}
	return out
}
