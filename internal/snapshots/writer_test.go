package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gameday-ranker/internal/domain"
	"gameday-ranker/internal/timeutil"
)

func sampleResponse(date string) domain.RankingsResponse {
	return domain.NewRankingsResponse(date, []domain.Game{
		{ID: "statsapi-1", ExcitementScore: 88.5},
		{ID: "statsapi-2", ExcitementScore: 41.0},
	})
}

func TestWriteRankingsSnapshot(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)

	date := timeutil.FormatDate(time.Now().UTC())
	if err := w.WriteRankingsSnapshot(date, sampleResponse(date)); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	data, err := os.ReadFile(RankingsSnapshotPath(dir, date))
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var got domain.RankingsResponse
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if got.Date != date || len(got.Games) != 2 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	// Ranked order must survive the round trip.
	if got.Games[0].ID != "statsapi-1" {
		t.Fatalf("order not preserved: %+v", got.Games)
	}
}

func TestWriteRankingsSnapshotUpdatesManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)

	date := timeutil.FormatDate(time.Now().UTC())
	if err := w.WriteRankingsSnapshot(date, sampleResponse(date)); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	m, err := readManifest(filepath.Join(dir, "manifest.json"), 14)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if len(m.Rankings.Dates) != 1 || m.Rankings.Dates[0] != date {
		t.Fatalf("unexpected manifest dates %v", m.Rankings.Dates)
	}
	if m.Retention.RankingsDays != 14 {
		t.Fatalf("unexpected retention %d", m.Retention.RankingsDays)
	}
}

func TestWriteRankingsSnapshotIdempotentContent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	date := timeutil.FormatDate(time.Now().UTC())

	if err := w.WriteRankingsSnapshot(date, sampleResponse(date)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, err := os.Stat(RankingsSnapshotPath(dir, date))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := w.WriteRankingsSnapshot(date, sampleResponse(date)); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, err := os.Stat(RankingsSnapshotPath(dir, date))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !second.ModTime().Equal(first.ModTime()) {
		t.Fatal("identical content should not rewrite the snapshot file")
	}
}

func TestWriteRankingsSnapshotPrunesOldDates(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 7)

	old := timeutil.FormatDate(time.Now().UTC().AddDate(0, 0, -30))
	if err := w.WriteRankingsSnapshot(old, sampleResponse(old)); err != nil {
		t.Fatalf("write old snapshot: %v", err)
	}

	today := timeutil.FormatDate(time.Now().UTC())
	if err := w.WriteRankingsSnapshot(today, sampleResponse(today)); err != nil {
		t.Fatalf("write new snapshot: %v", err)
	}

	if _, err := os.Stat(RankingsSnapshotPath(dir, old)); !os.IsNotExist(err) {
		t.Fatal("expected old snapshot pruned")
	}
	m, err := readManifest(filepath.Join(dir, "manifest.json"), 7)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if len(m.Rankings.Dates) != 1 || m.Rankings.Dates[0] != today {
		t.Fatalf("unexpected manifest dates %v", m.Rankings.Dates)
	}
}

func TestWriteRankingsSnapshotRequiresDate(t *testing.T) {
	w := NewWriter(t.TempDir(), 14)
	if err := w.WriteRankingsSnapshot("", domain.RankingsResponse{}); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestWriteRankingsSnapshotFillsDate(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 14)
	date := timeutil.FormatDate(time.Now().UTC())

	if err := w.WriteRankingsSnapshot(date, domain.RankingsResponse{Games: []domain.Game{}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(RankingsSnapshotPath(dir, date))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got domain.RankingsResponse
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Date != date {
		t.Fatalf("expected the date filled in, got %q", got.Date)
	}
}
