package interview

// Question is immutable reference data for one multiple-choice prompt.
// Correct indexes into Options.
type Question struct {
	ID          string   `yaml:"id" json:"id"`
	Prompt      string   `yaml:"prompt" json:"prompt"`
	Options     []string `yaml:"options" json:"options"`
	Correct     int      `yaml:"correct" json:"correct"`
	Explanation string   `yaml:"explanation" json:"explanation"`
	Hint        string   `yaml:"hint,omitempty" json:"hint,omitempty"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty"`
	Topic       string   `yaml:"topic" json:"topic"`
}
