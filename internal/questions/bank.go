// Package questions loads the per-topic interview question banks embedded
// with the binary. The banks are reference data; wording lives in YAML, not
// in code.
package questions

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algowalk/internal/interview"
)

//go:embed banks/*.yaml
var banksFS embed.FS

type bankFile struct {
	Topic     string               `yaml:"topic"`
	Questions []interview.Question `yaml:"questions"`
}

// ForTopic returns the question list for a topic.
func ForTopic(topic string) ([]interview.Question, error) {
	data, err := banksFS.ReadFile("banks/" + topic + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no question bank for topic: %s", topic)
	}
	return parseBank(topic, data)
}

// parseBank decodes a bank and rejects duplicate question IDs, which would
// make the later copies unanswerable since results are keyed by ID.
func parseBank(topic string, data []byte) ([]interview.Question, error) {
	var bank bankFile
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parse bank %s: %w", topic, err)
	}
	seen := make(map[string]bool, len(bank.Questions))
	for i, q := range bank.Questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("bank %s: duplicate question id %q", topic, q.ID)
		}
		seen[q.ID] = true
		bank.Questions[i].Topic = bank.Topic
	}
	return bank.Questions, nil
}

// Topics lists every topic that has a bank.
func Topics() []string {
	entries, err := banksFS.ReadDir("banks")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
