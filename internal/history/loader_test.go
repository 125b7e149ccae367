package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInteractionsCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interactions.csv")
	content := "Дата,Источник,Цель,Успех\n" +
		"2026-07-29,alice,bob,success\n" +
		"2026-07-29,bob,alice,fail\n" +
		"2026-07-30,alice,bob,refusal\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	summaries := LoadInteractionsCSV(path)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 day summaries, got %d", len(summaries))
	}
	if summaries[0].SuccessCount != 1 || summaries[0].FailCount != 1 {
		t.Errorf("day 0 summary = %+v, want 1 success, 1 fail", summaries[0])
	}
	if summaries[1].RefusalCount != 1 {
		t.Errorf("day 1 summary = %+v, want 1 refusal", summaries[1])
	}
}

func TestLoadInteractionsCSVMissingFile(t *testing.T) {
	if got := LoadInteractionsCSV(filepath.Join(t.TempDir(), "missing.csv")); got != nil {
		t.Errorf("expected nil for a missing file, got %v", got)
	}
}
