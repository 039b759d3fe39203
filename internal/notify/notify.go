// Package notify delivers user-facing cart messages (the storefront "toasts").
package notify

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Message is a recorded notification.
type Message struct {
	Text string    `json:"message"`
	At   time.Time `json:"at"`
}

// Recorder buffers notifications until a consumer drains them. Once the buffer is full the
// oldest message is dropped.
type Recorder struct {
	mu    sync.Mutex
	limit int
	msgs  []Message
	now   func() time.Time
}

func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 100
	}
	return &Recorder{limit: limit, now: time.Now}
}

func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.msgs) == r.limit {
		r.msgs = r.msgs[1:]
	}
	r.msgs = append(r.msgs, Message{Text: message, At: r.now()})
}

// Drain returns the buffered messages oldest first and empties the buffer.
func (r *Recorder) Drain() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.msgs
	r.msgs = nil
	if out == nil {
		out = []Message{}
	}
	return out
}

// Logger writes notifications to a logrus logger at warning level.
type Logger struct {
	log logrus.FieldLogger
}

func NewLogger(log logrus.FieldLogger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Notify(message string) {
	l.log.WithField("notification", message).Warn("cart notification")
}

type notifier interface {
	Notify(message string)
}

// Multi fans a notification out to every wrapped notifier.
type Multi []notifier

func (m Multi) Notify(message string) {
	for _, n := range m {
		n.Notify(message)
	}
}
