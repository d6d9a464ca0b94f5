package questions

import "testing"

func TestTopicsHaveBanks(t *testing.T) {
	topics := Topics()
	if len(topics) == 0 {
		t.Fatal("no embedded banks found")
	}

	for _, topic := range topics {
		qs, err := ForTopic(topic)
		if err != nil {
			t.Fatalf("load %s: %v", topic, err)
		}
		if len(qs) == 0 {
			t.Errorf("%s: empty bank", topic)
		}
		for _, q := range qs {
			if q.ID == "" || q.Prompt == "" {
				t.Errorf("%s: question missing id or prompt", topic)
			}
			if len(q.Options) < 2 {
				t.Errorf("%s/%s: expected at least 2 options", topic, q.ID)
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				t.Errorf("%s/%s: correct index %d out of range", topic, q.ID, q.Correct)
			}
			if q.Topic != topic {
				t.Errorf("%s/%s: topic field %q not stamped", topic, q.ID, q.Topic)
			}
			if q.Explanation == "" {
				t.Errorf("%s/%s: missing explanation", topic, q.ID)
			}
		}
	}
}

func TestParseBankRejectsDuplicateIDs(t *testing.T) {
	data := []byte(`topic: lru
questions:
  - id: q1
    prompt: first
    options: [a, b]
    correct: 0
  - id: q1
    prompt: second
    options: [a, b]
    correct: 1
`)

	if _, err := parseBank("lru", data); err == nil {
		t.Error("expected error for duplicate question id")
	}
}

func TestForTopicUnknown(t *testing.T) {
	if _, err := ForTopic("btree"); err == nil {
		t.Error("expected error for unknown topic")
	}
}
