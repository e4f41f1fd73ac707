// Package progress renders a byte-count progress bar for file payloads.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Start wraps r in a progress-reporting reader when the terminal can show
// one. The returned stop function must be called once streaming ends. When
// no bar can be drawn, r comes back untouched and stop is a no-op.
func Start(r io.Reader, size int64) (io.Reader, func()) {
	if size <= 0 || !showProgress() {
		return r, func() {}
	}

	bar := pb.New64(size)
	bar.Set(pb.Bytes, true)
	bar.SetTemplateString(`{{counters . }} {{bar . | green }} {{percent .}} {{speed . "%s/s"}}`)
	bar.SetRefreshRate(200 * time.Millisecond)
	bar.SetWidth(80)
	if err := bar.Err(); err != nil {
		return r, func() {}
	}

	bar.Start()
	return bar.NewProxyReader(r), func() { bar.Finish() }
}

func showProgress() bool {
	// Progress supports only text format for now.
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter); !ok {
		return false
	}

	// Both logrus and pb write to stderr by default; the bar must not
	// interleave with bytes relayed to stdout.
	logFd := os.Stderr.Fd()
	return isatty.IsTerminal(logFd) || isatty.IsCygwinTerminal(logFd)
}
