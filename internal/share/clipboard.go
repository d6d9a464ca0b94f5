package share

import (
	"io"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard is the collaborator that receives a share link. Writing is the
// whole "share" action; the codec itself never touches it.
type Clipboard interface {
	WriteString(s string) error
}

// OSC52Clipboard copies through the terminal using an OSC 52 escape
// sequence, which most modern terminals forward to the system clipboard.
type OSC52Clipboard struct {
	Out io.Writer
}

func (c OSC52Clipboard) WriteString(s string) error {
	_, err := osc52.New(s).WriteTo(c.Out)
	return err
}
