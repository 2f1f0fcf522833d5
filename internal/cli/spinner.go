package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spin shows an animated progress indicator on stderr until the returned
// stop function is called or ctx is cancelled. Stop is idempotent and blocks
// until the line has been cleared, so callers can print immediately after.
//
// Rendering through the WebAssembly Graphviz runtime takes a moment on first
// use; the spinner covers that pause.
func spin(ctx context.Context, message string) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(message)+4))
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(message))
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
