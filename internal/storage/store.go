package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/algowalk/internal/interview"
)

// Store persists finished quiz sessions under a data directory, one
// subdirectory per session holding metadata.json and results.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID               string    `json:"id"`
	Topic            string    `json:"topic"`
	Timestamp        time.Time `json:"timestamp"`
	Questions        int       `json:"questions"`
	Correct          int       `json:"correct"`
	Percentage       int       `json:"percentage"`
	TotalTimeSeconds float64   `json:"total_time_seconds"`
	Shuffled         bool      `json:"shuffled"`
	Complete         bool      `json:"complete"`
}

func (s *Store) Save(sess interview.Session) (string, error) {
	if sess.ID == "" {
		return "", fmt.Errorf("session has no id")
	}
	sessDir := filepath.Join(s.baseDir, sess.ID)
	if err := os.MkdirAll(sessDir, 0755); err != nil {
		return "", err
	}

	score := interview.ScoreOf(sess.Results)
	meta := SessionMetadata{
		ID:               sess.ID,
		Topic:            sess.Topic,
		Timestamp:        sess.StartedAt,
		Questions:        len(sess.Questions),
		Correct:          score.Correct,
		Percentage:       score.Percentage,
		TotalTimeSeconds: sess.TotalTime.Seconds(),
		Shuffled:         sess.Shuffled,
		Complete:         sess.Complete,
	}

	metaFile, err := os.Create(filepath.Join(sessDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(sessDir, "results.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"question_id", "selected", "correct", "time_seconds", "used_hint"}); err != nil {
		return "", err
	}
	for _, r := range sess.Results {
		row := []string{
			r.QuestionID,
			strconv.Itoa(r.Selected),
			strconv.FormatBool(r.Correct),
			strconv.FormatFloat(r.TimeSpent.Seconds(), 'f', 3, 64),
			strconv.FormatBool(r.UsedHint),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return sess.ID, nil
}

func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMetadata{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta SessionMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.Before(sessions[j].Timestamp)
	})
	return sessions, nil
}

func (s *Store) Load(id string) (SessionMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return SessionMetadata{}, fmt.Errorf("unknown session: %s", id)
	}
	var meta SessionMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return SessionMetadata{}, err
	}
	return meta, nil
}

func (s *Store) LoadResults(id string) ([]interview.Result, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "results.csv"))
	if err != nil {
		return nil, fmt.Errorf("unknown session: %s", id)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []interview.Result{}, nil
	}

	results := make([]interview.Result, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 5 {
			return nil, fmt.Errorf("malformed results row in session %s", id)
		}
		selected, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, err
		}
		correct, err := strconv.ParseBool(row[2])
		if err != nil {
			return nil, err
		}
		secs, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, err
		}
		usedHint, err := strconv.ParseBool(row[4])
		if err != nil {
			return nil, err
		}
		results = append(results, interview.Result{
			QuestionID: row[0],
			Selected:   selected,
			Correct:    correct,
			TimeSpent:  time.Duration(secs * float64(time.Second)),
			UsedHint:   usedHint,
		})
	}
	return results, nil
}
