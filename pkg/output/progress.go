package output

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

const progressTemplate = `{{string . "prefix"}}{{counters . }} files hashed ({{string . "sides"}}) {{etime . }}`

// Progress shows a live count of hashed files. The counter is only drawn
// when the writer is a terminal; otherwise every method is a no-op.
// A nil *Progress is valid and does nothing.
type Progress struct {
	bar   *pb.ProgressBar
	left  atomic.Int64
	right atomic.Int64
}

// NewProgress creates a progress counter writing to w. It returns nil when
// progress is disabled or w is not a terminal.
func NewProgress(w io.Writer, enabled bool) *Progress {
	if !enabled || !IsTerminal(w) {
		return nil
	}

	bar := pb.ProgressBarTemplate(progressTemplate).New(0)
	bar.SetWriter(w)
	bar.SetRefreshRate(getUpdateInterval())
	bar.Set("prefix", "Scanning ")
	bar.Set("sides", "left 0, right 0")

	return &Progress{bar: bar}
}

// Start begins drawing
func (p *Progress) Start() {
	if p == nil {
		return
	}
	p.bar.Start()
}

// FileHashed records one hashed file on the given side ("left" or "right")
func (p *Progress) FileHashed(side string) {
	if p == nil {
		return
	}
	if side == "left" {
		p.left.Add(1)
	} else {
		p.right.Add(1)
	}
	p.bar.Set("sides", fmt.Sprintf("left %d, right %d", p.left.Load(), p.right.Load()))
	p.bar.Increment()
}

// Finish stops drawing and leaves the final count on screen
func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// getUpdateInterval returns the redraw interval based on OS.
// Windows consoles redraw slowly, so they refresh less often.
func getUpdateInterval() time.Duration {
	if runtime.GOOS == "windows" {
		return 300 * time.Millisecond
	}
	return 100 * time.Millisecond
}
