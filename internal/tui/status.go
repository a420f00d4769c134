package tui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner renders an animated single-line status message while a
// blocking operation (resolution, download) runs. Start it, do the
// work, then Stop it; the line is cleared on stop.
type Spinner struct {
	w       io.Writer
	message string
	start   time.Time

	mu      sync.Mutex
	done    chan struct{}
	stopped bool
}

// NewSpinner starts a spinner showing message on w.
func NewSpinner(w io.Writer, message string) *Spinner {
	s := &Spinner{
		w:       w,
		message: message,
		start:   time.Now(),
		done:    make(chan struct{}),
	}
	go s.loop()
	return s
}

// Stop clears the status line and halts the animation. Safe to call
// more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.done)
	fmt.Fprint(s.w, "\r\033[K")
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	tick := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			frame := spinnerFrames[tick%len(spinnerFrames)]
			tick++
			elapsed := time.Since(s.start).Round(100 * time.Millisecond)
			fmt.Fprintf(s.w, "\r\033[K%s %s (%s)", frame, s.message, elapsed)
		}
	}
}
