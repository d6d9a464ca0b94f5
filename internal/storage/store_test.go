package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/algowalk/internal/interview"
)

func sampleSession() interview.Session {
	return interview.Session{
		ID:    "lru_1700000000",
		Topic: "lru",
		Questions: []interview.Question{
			{ID: "q1"}, {ID: "q2"}, {ID: "q3"},
		},
		Results: []interview.Result{
			{QuestionID: "q1", Selected: 1, Correct: true, TimeSpent: 4 * time.Second},
			{QuestionID: "q2", Selected: 0, Correct: true, TimeSpent: 9500 * time.Millisecond, UsedHint: true},
			{QuestionID: "q3", Selected: 3, Correct: false, TimeSpent: 2 * time.Second},
		},
		Complete:  true,
		Shuffled:  true,
		StartedAt: time.Unix(1700000000, 0).UTC(),
		TotalTime: 15500 * time.Millisecond,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := st.Save(sampleSession())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id != "lru_1700000000" {
		t.Errorf("unexpected id %q", id)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Topic != "lru" {
		t.Errorf("expected topic lru, got %s", meta.Topic)
	}
	if meta.Correct != 2 || meta.Percentage != 67 {
		t.Errorf("expected score 2/67%%, got %d/%d%%", meta.Correct, meta.Percentage)
	}
	if !meta.Shuffled || !meta.Complete {
		t.Error("shuffled/complete flags lost")
	}

	results, err := st.LoadResults(id)
	if err != nil {
		t.Fatalf("load results failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[1].QuestionID != "q2" || !results[1].UsedHint {
		t.Errorf("result 1 mismatch: %+v", results[1])
	}
	if results[1].TimeSpent != 9500*time.Millisecond {
		t.Errorf("time spent mismatch: %v", results[1].TimeSpent)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	first := sampleSession()
	second := sampleSession()
	second.ID = "heap_1700000500"
	second.Topic = "heap"
	second.StartedAt = first.StartedAt.Add(5 * time.Minute)

	if _, err := st.Save(second); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(first); err != nil {
		t.Fatal(err)
	}

	sessions, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Topic != "lru" || sessions[1].Topic != "heap" {
		t.Errorf("expected chronological order, got %s then %s", sessions[0].Topic, sessions[1].Topic)
	}
}

func TestStoreListEmpty(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))

	sessions, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestLoadUnknownSession(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("missing"); err == nil {
		t.Error("expected error for unknown session")
	}
	if _, err := st.LoadResults("missing"); err == nil {
		t.Error("expected error for unknown session results")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	sess := sampleSession()
	if _, err := st.Save(sess); err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	results, err := st.LoadResults(sess.ID)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(path, meta, results); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	info, err := filepath.Glob(path)
	if err != nil || len(info) != 1 {
		t.Errorf("expected export file at %s", path)
	}
}
