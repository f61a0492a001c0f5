// Package htmlws sends rendered markup over a gorilla/websocket connection,
// one text message per fragment or document.
package htmlws

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

// DefaultWriteTimeout bounds each message write.
const DefaultWriteTimeout = 10 * time.Second

// Option configures a Sender.
type Option func(*Sender)

// WithWriteTimeout sets the write deadline applied before each message.
// Zero disables the deadline.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Sender) {
		s.writeTimeout = d
	}
}

// WithLogger sets the logger used for failed sends.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sender) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBuffering renders each message fully before writing it, so a render
// failure sends nothing. Without it, output is streamed into the frame and
// a failure ends the message with the bytes already rendered.
func WithBuffering() Option {
	return func(s *Sender) {
		s.buffered = true
	}
}

// Sender writes rendered content to a websocket connection. It is safe for
// concurrent use; writes are serialized since the connection supports a
// single concurrent writer.
type Sender struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
	buffered     bool
	logger       *slog.Logger

	mu sync.Mutex
}

// NewSender creates a Sender for conn.
func NewSender(conn *websocket.Conn, opts ...Option) *Sender {
	s := &Sender{
		conn:         conn,
		writeTimeout: DefaultWriteTimeout,
		logger:       slog.Default().With("component", "htmlws"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send renders n as a fragment into one text message.
func (s *Sender) Send(n markup.Node) error {
	return s.send(func(w io.Writer) error {
		return render.Render(w, n)
	})
}

// SendDocument renders doc, doctype included, into one text message.
func (s *Sender) SendDocument(doc render.Document) error {
	return s.send(doc.Render)
}

func (s *Sender) send(fn func(io.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffered {
		var buf bytes.Buffer
		if err := fn(&buf); err != nil {
			s.logger.Warn("render failed, message not sent", "error", err)
			return err
		}
		s.setDeadline()
		return s.conn.WriteMessage(websocket.TextMessage, buf.Bytes())
	}

	s.setDeadline()
	w, err := s.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	renderErr := fn(w)
	closeErr := w.Close()
	if renderErr != nil {
		s.logger.Warn("render failed, message truncated", "error", renderErr)
		return renderErr
	}
	return closeErr
}

func (s *Sender) setDeadline() {
	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
}
