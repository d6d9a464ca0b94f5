package share

import (
	"net/url"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := Codec{Topic: "lru"}

	v := c.Encode(12)
	if got := v.Get("lru-step"); got != "12" {
		t.Errorf("expected lru-step=12, got %q", got)
	}
	if got := c.Decode(v, 40); got != 12 {
		t.Errorf("expected 12 back, got %d", got)
	}
}

func TestDecodeClampsAndDefaults(t *testing.T) {
	c := Codec{Topic: "heap"}

	tests := []struct {
		name string
		raw  string
		max  int
		want int
	}{
		{"absent", "", 10, 0},
		{"garbage", "abc", 10, 0},
		{"negative", "-3", 10, 0},
		{"past end", "99", 10, 10},
		{"in range", "7", 10, 7},
	}

	for _, tt := range tests {
		values := url.Values{}
		if tt.raw != "" {
			values.Set(c.Param(), tt.raw)
		}
		if got := c.Decode(values, tt.max); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestDecodeIgnoresOtherTopics(t *testing.T) {
	values := url.Values{"lru-step": []string{"5"}}

	c := Codec{Topic: "heap"}
	if got := c.Decode(values, 10); got != 0 {
		t.Errorf("expected 0 for foreign parameter, got %d", got)
	}
}

func TestLink(t *testing.T) {
	c := Codec{Topic: "ring"}

	want := "https://algowalk.dev/ring?ring-step=4"
	if got := c.Link("https://algowalk.dev", 4); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
