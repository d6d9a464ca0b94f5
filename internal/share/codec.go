// Package share encodes the playback position into a topic-namespaced query
// parameter so a walkthrough moment can be linked to. The codec never owns
// playback state; it only translates an index to and from the URL form.
package share

import (
	"fmt"
	"net/url"
	"strconv"
)

// Codec reads and writes the <topic>-step parameter.
type Codec struct {
	Topic string
}

// Param is the namespaced query parameter name.
func (c Codec) Param() string { return c.Topic + "-step" }

// Encode returns query values carrying the step index.
func (c Codec) Encode(step int) url.Values {
	return url.Values{c.Param(): []string{strconv.Itoa(step)}}
}

// Decode extracts the step index from values, clamped into [0, max]. An
// absent or unparseable parameter yields 0.
func (c Codec) Decode(values url.Values, max int) int {
	raw := values.Get(c.Param())
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Link builds the shareable URL for a step of this topic.
func (c Codec) Link(base string, step int) string {
	return fmt.Sprintf("%s/%s?%s", base, c.Topic, c.Encode(step).Encode())
}
