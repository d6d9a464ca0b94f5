package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/algowalk/internal/interview"
)

type ExportData struct {
	ID               string             `json:"id"`
	Topic            string             `json:"topic"`
	Questions        int                `json:"questions"`
	Score            interview.Score    `json:"score"`
	TotalTimeSeconds float64            `json:"total_time_seconds"`
	Shuffled         bool               `json:"shuffled"`
	Results          []interview.Result `json:"results"`
}

func exportData(meta SessionMetadata, results []interview.Result) ExportData {
	return ExportData{
		ID:               meta.ID,
		Topic:            meta.Topic,
		Questions:        meta.Questions,
		Score:            interview.ScoreOf(results),
		TotalTimeSeconds: meta.TotalTimeSeconds,
		Shuffled:         meta.Shuffled,
		Results:          results,
	}
}

func ExportJSON(path string, meta SessionMetadata, results []interview.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, results))
}

func ExportJSONStdout(meta SessionMetadata, results []interview.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, results))
}
