// Copyright (c) 2025 KGDebug
// Licensed under the MIT License. See LICENSE file in the project root for details.

package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"

	kgerrors "kgdebug/cli/internal/errors"
	"kgdebug/cli/internal/progress"
)

// fileChunk is the write size used when streaming a file payload. Each
// chunk write is followed by the usual best-effort drain, so interim
// server output surfaces while a large file is still going out.
const fileChunk = 32 * 1024

// Input is a payload source for payload-bearing actions. The unexported
// method keeps the set of variants closed: a payload is either an inline
// string or a local file, nothing else.
type Input interface {
	sendTo(c *Client) error
}

// StringInput sends an inline payload. The text is normalized on
// construction: surrounding whitespace stripped, one trailing newline.
type StringInput struct {
	text string
}

// NewStringInput normalizes text into a ready-to-send payload.
func NewStringInput(text string) StringInput {
	return StringInput{text: strings.TrimSpace(text) + "\n"}
}

func (s StringInput) sendTo(c *Client) error {
	return c.write([]byte(s.text))
}

// FileInput streams a local file's raw bytes without re-encoding. The
// file must already match what the server expects.
type FileInput struct {
	path string
}

// NewFileInput references path without touching it; the file is opened
// only when the payload is sent.
func NewFileInput(path string) FileInput {
	return FileInput{path: path}
}

func (f FileInput) sendTo(c *Client) error {
	file, err := os.Open(f.path)
	if err != nil {
		return kgerrors.Wrap(kgerrors.UnsupportedInput, fmt.Sprintf("open input file %s", f.path), err)
	}
	defer file.Close()

	var size int64
	if st, err := file.Stat(); err == nil {
		size = st.Size()
		logrus.Debugf("streaming %s (%s)", f.path, units.BytesSize(float64(size)))
	}

	r, stop := progress.Start(file, size)
	defer stop()

	buf := make([]byte, fileChunk)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if werr := c.write(buf[:n]); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return kgerrors.Wrap(kgerrors.IOFailed, fmt.Sprintf("read input file %s", f.path), rerr)
		}
	}
}
