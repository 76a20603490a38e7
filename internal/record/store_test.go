package record

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMarshalRoundTrip(t *testing.T) {
	finished := time.UnixMilli(1760600000123)
	in := []Record{
		{SessionID: "a", Score: 12, Length: 15, Ticks: 340, FinishedAt: finished},
		{SessionID: "b"},
	}

	out, err := Unmarshal(Marshal(in))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	if out[0].SessionID != "a" || out[0].Score != 12 || out[0].Length != 15 || out[0].Ticks != 340 {
		t.Errorf("first record = %+v", out[0])
	}
	if !out[0].FinishedAt.Equal(finished) {
		t.Errorf("finished at = %v, want %v", out[0].FinishedAt, finished)
	}
	if out[1].SessionID != "b" || out[1].Score != 0 || !out[1].FinishedAt.IsZero() {
		t.Errorf("second record = %+v", out[1])
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	data := append([]byte{0x10, 0x07}, Marshal([]Record{{SessionID: "x", Score: 3}})...)

	out, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].Score != 3 {
		t.Errorf("got %+v", out)
	}
}

func TestUnmarshalRejectsTruncatedData(t *testing.T) {
	data := Marshal([]Record{{SessionID: "truncated", Score: 9}})

	if _, err := Unmarshal(data[:len(data)-3]); err == nil {
		t.Errorf("expected error for truncated data")
	}
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "records.pb"), 5)

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want none", len(records))
	}
	if _, ok, err := store.Best(); ok || err != nil {
		t.Errorf("Best on empty store = %v, %v", ok, err)
	}
}

func TestStoreKeepsTopRecords(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "records.pb"), 3)
	base := time.UnixMilli(1760000000000)

	scores := []int32{4, 9, 1, 9, 6}
	ranks := make([]int, len(scores))
	for i, score := range scores {
		rank, err := store.Add(Record{
			SessionID:  string(rune('a' + i)),
			Score:      score,
			FinishedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		ranks[i] = rank
	}

	wantRanks := []int{1, 1, 3, 2, 3}
	for i := range ranks {
		if ranks[i] != wantRanks[i] {
			t.Errorf("rank of record %d = %d, want %d", i, ranks[i], wantRanks[i])
		}
	}

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	wantIDs := []string{"b", "d", "e"}
	if len(records) != len(wantIDs) {
		t.Fatalf("got %d records, want %d", len(records), len(wantIDs))
	}
	for i, id := range wantIDs {
		if records[i].SessionID != id {
			t.Errorf("records[%d] = %s, want %s", i, records[i].SessionID, id)
		}
	}

	best, ok, err := store.Best()
	if err != nil || !ok || best.Score != 9 {
		t.Errorf("Best = %+v, %v, %v", best, ok, err)
	}
}

func TestStoreRankZeroWhenOffTable(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "records.pb"), 1)

	if _, err := store.Add(Record{SessionID: "high", Score: 10}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	rank, err := store.Add(Record{SessionID: "low", Score: 2})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if rank != 0 {
		t.Errorf("rank = %d, want 0", rank)
	}
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.pb")
	if err := os.WriteFile(path, []byte{0x0a, 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewStore(path, 3).Load(); err == nil {
		t.Errorf("expected error for corrupt file")
	}
}
