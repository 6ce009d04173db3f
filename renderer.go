package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/voxhollow/descant/speech"
)

var (
	textStyle     = lipgloss.NewStyle()
	commandStyle  = lipgloss.NewStyle().Faint(true)
	priorityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#ECFD65"}).
			Bold(true)
)

// renderer prints finished speech sequences instead of synthesizing them.
// It satisfies the playback contract the engine speaks through.
type renderer struct {
	mu           sync.Mutex
	w            io.Writer
	width        int
	showCommands bool
}

func newRenderer(w io.Writer, width int, showCommands bool) *renderer {
	return &renderer{w: w, width: width, showCommands: showCommands}
}

// Speak renders one utterance as an indented, word-wrapped block. Priority
// interruptions are tagged so reordering stays visible in a linear log.
func (r *renderer) Speak(seq speech.Sequence, priority speech.Priority) {
	var b strings.Builder
	for _, item := range seq {
		switch v := item.(type) {
		case speech.Text:
			b.WriteString(textStyle.Render(string(v)))
		case speech.Command:
			if r.showCommands {
				b.WriteString(commandStyle.Render("[" + fmt.Sprint(v) + "]"))
				b.WriteString(" ")
			}
		}
	}

	out := strings.TrimRight(b.String(), " ")
	if out == "" {
		return
	}
	if priority != speech.PriorityNormal {
		out = priorityStyle.Render("("+priority.String()+")") + " " + out
	}
	if r.width > 0 {
		out = wordwrap.String(out, r.width-2)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, indent.String(out, 2)) //nolint:errcheck
}

// Cancel discards queued speech. Rendering is synchronous, so there is
// nothing in flight to drop.
func (r *renderer) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, commandStyle.Render("  [cancelled]")) //nolint:errcheck
}
