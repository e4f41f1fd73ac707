// Copyright (c) 2025 KGDebug
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package client implements the line protocol spoken by the knowledge
// provider test server. A Client owns exactly one connection, issues one
// action per lifetime, and relays every byte the server writes back.
//
// Reads happen in two modes. After each send the client polls the socket
// briefly and prints whatever already arrived, swallowing errors. At the
// end of an action it blocks until the server closes its end of the
// stream. The two modes are not interchangeable: the first surfaces
// interim progress output, the second captures the response itself.
package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"

	"kgdebug/cli/internal/action"
	"kgdebug/cli/internal/config"
	kgerrors "kgdebug/cli/internal/errors"
)

// drainPoll bounds the best-effort read after each send. Long enough to
// pick up output the server has already written, short enough that silent
// polls do not slow down a stream of writes.
const drainPoll = time.Millisecond

// Client is a single-use connection to the test server. Zero concurrent
// use: one goroutine opens it, runs one action, closes it.
type Client struct {
	cfg  config.Config
	conn net.Conn
	out  io.Writer
}

// New builds a client from immutable settings. Server output is relayed
// to out; nil means os.Stdout.
func New(cfg config.Config, out io.Writer) *Client {
	if out == nil {
		out = os.Stdout
	}
	return &Client{cfg: cfg, out: out}
}

// Open dials the configured endpoint. The context bounds only the dial;
// later reads and writes block without timeout.
func (c *Client) Open(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.cfg.Addr())
	if err != nil {
		return kgerrors.Wrap(kgerrors.ConnectionFailed, fmt.Sprintf("connect to %s", c.cfg.Addr()), err)
	}
	c.conn = conn
	logrus.Debugf("connected to %s", conn.RemoteAddr())
	return nil
}

// Close releases the connection. Calling it on a client that never
// connected is a no-op, so error paths can always defer it.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// DebugBegin asks the server for verbose logging during this session.
func (c *Client) DebugBegin() error {
	return c.sendLine(fmt.Sprintf("%s debug begin\n", c.cfg.Prefix))
}

// DebugEnd asks the server for quiet logging during this session.
func (c *Client) DebugEnd() error {
	return c.sendLine(fmt.Sprintf("%s debug end\n", c.cfg.Prefix))
}

// Run dispatches one parsed action. Payload-bearing actions receive their
// input here; the rest ignore it.
func (c *Client) Run(a action.Action, in Input, datastore string) error {
	switch a {
	case action.ClearAll:
		return c.ClearAll()
	case action.CreateDatastore:
		return c.CreateDatastore(datastore)
	case action.DeleteDatastore:
		return c.DeleteDatastore(datastore)
	case action.GetTriplesCount:
		return c.GetTriplesCount(datastore)
	case action.ImportAxioms:
		return c.ImportAxioms(datastore)
	case action.ImportPrefixes:
		return c.ImportPrefixes(in, datastore)
	case action.ImportSchemas:
		return c.ImportSchemas(in, datastore)
	case action.ImportRules:
		return c.ImportRules(in, datastore)
	case action.Insert:
		return c.Insert(in, datastore)
	case action.Delete:
		return c.Delete(in, datastore)
	case action.Query:
		return c.Query(in, datastore)
	}
	return kgerrors.New(kgerrors.UnsupportedAction, fmt.Sprintf("invalid action %q", a))
}

// ClearAll wipes every datastore on the server. The server ignores the
// datastore field for this action, so none is sent.
func (c *Client) ClearAll() error {
	return c.runBare(action.ClearAll, "")
}

// CreateDatastore creates the named datastore.
func (c *Client) CreateDatastore(datastore string) error {
	return c.runBare(action.CreateDatastore, datastore)
}

// DeleteDatastore deletes the named datastore.
func (c *Client) DeleteDatastore(datastore string) error {
	return c.runBare(action.DeleteDatastore, datastore)
}

// GetTriplesCount reports the number of triples in the datastore.
func (c *Client) GetTriplesCount(datastore string) error {
	return c.runBare(action.GetTriplesCount, datastore)
}

// ImportAxioms runs TBox reasoning server-side. No payload is streamed.
func (c *Client) ImportAxioms(datastore string) error {
	return c.runBare(action.ImportAxioms, datastore)
}

// ImportPrefixes streams prefix declarations into the datastore.
func (c *Client) ImportPrefixes(in Input, datastore string) error {
	return c.runWithInput(action.ImportPrefixes, in, datastore)
}

// ImportSchemas streams schema data into the datastore.
func (c *Client) ImportSchemas(in Input, datastore string) error {
	return c.runWithInput(action.ImportSchemas, in, datastore)
}

// ImportRules streams rule definitions into the datastore.
func (c *Client) ImportRules(in Input, datastore string) error {
	return c.runWithInput(action.ImportRules, in, datastore)
}

// Insert streams facts into the datastore.
func (c *Client) Insert(in Input, datastore string) error {
	return c.runWithInput(action.Insert, in, datastore)
}

// Delete streams a description of facts to remove from the datastore.
func (c *Client) Delete(in Input, datastore string) error {
	return c.runWithInput(action.Delete, in, datastore)
}

// Query streams a query and prints its result.
func (c *Client) Query(in Input, datastore string) error {
	return c.runWithInput(action.Query, in, datastore)
}

func (c *Client) runBare(a action.Action, datastore string) error {
	if err := c.sendCommand(a, datastore); err != nil {
		return err
	}
	return c.drainUntilClosed()
}

func (c *Client) runWithInput(a action.Action, in Input, datastore string) error {
	if in == nil {
		return kgerrors.New(kgerrors.UnsupportedInput,
			fmt.Sprintf("action %s requires --input-file or --input-string", a))
	}
	if err := c.sendCommand(a, datastore); err != nil {
		return err
	}
	if err := in.sendTo(c); err != nil {
		return err
	}
	if err := c.endInput(); err != nil {
		return err
	}
	return c.drainUntilClosed()
}

// sendCommand writes one command line. The datastore field is always
// present, so an empty name still leaves a space before the newline.
func (c *Client) sendCommand(a action.Action, datastore string) error {
	return c.sendLine(fmt.Sprintf("%s %s %s\n", c.cfg.Prefix, a, datastore))
}

// endInput marks the payload as complete.
func (c *Client) endInput() error {
	return c.sendLine(fmt.Sprintf("%s input end\n", c.cfg.Prefix))
}

// sendLine writes one protocol control line.
func (c *Client) sendLine(line string) error {
	logrus.Debugf("send %q", line)
	return c.write([]byte(line))
}

// write pushes bytes to the server, then polls for anything the server
// already sent back.
func (c *Client) write(p []byte) error {
	if c.conn == nil {
		return kgerrors.New(kgerrors.ConnectionFailed, "not connected")
	}
	if _, err := c.conn.Write(p); err != nil {
		return kgerrors.Wrap(kgerrors.IOFailed, "send to server", err)
	}
	c.drainAvailable()
	return nil
}

// drainAvailable relays output the server has already produced, without
// waiting for more. Any error here is discarded: this read is best-effort
// and the exhaustive drain at the end of the action reports real failures.
func (c *Client) drainAvailable() {
	defer c.conn.SetReadDeadline(time.Time{})

	buf := make([]byte, c.cfg.BufferSize)
	for {
		if err := c.conn.SetReadDeadline(time.Now().Add(drainPoll)); err != nil {
			return
		}
		n, err := c.conn.Read(buf)
		if n > 0 {
			_, _ = c.out.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// drainUntilClosed blocks on the socket and relays every chunk until the
// server closes its end of the stream.
func (c *Client) drainUntilClosed() error {
	if c.conn == nil {
		return kgerrors.New(kgerrors.ConnectionFailed, "not connected")
	}

	buf := make([]byte, c.cfg.BufferSize)
	var total int64
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			total += int64(n)
			if _, werr := c.out.Write(buf[:n]); werr != nil {
				return kgerrors.Wrap(kgerrors.IOFailed, "relay server output", werr)
			}
		}
		if err == io.EOF {
			logrus.Debugf("server closed the stream after %s", units.BytesSize(float64(total)))
			return nil
		}
		if err != nil {
			return kgerrors.Wrap(kgerrors.IOFailed, "read from server", err)
		}
	}
}
