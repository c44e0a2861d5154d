package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "notify")

const (
	defaultQueueSize   = 64
	defaultSendTimeout = 20 * time.Second
)

// Manager queues captions for asynchronous delivery. Publishing never
// blocks: when the queue is full the caption is dropped and counted.
type Manager struct {
	notifier Notifier
	queue    chan string
	stop     chan struct{}
	done     chan struct{}
	dropped  uint64
	mu       sync.RWMutex
	closed   bool
}

func NewManager(notifier Notifier) *Manager {
	if notifier == nil {
		return nil
	}
	m := &Manager{
		notifier: notifier,
		queue:    make(chan string, defaultQueueSize),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go m.loop()
	return m
}

// Publish enqueues a caption for delivery. Safe on a nil manager.
func (m *Manager) Publish(caption string) {
	if m == nil {
		return
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	select {
	case m.queue <- caption:
	default:
		dropped := atomic.AddUint64(&m.dropped, 1)
		log.WithFields(logrus.Fields{
			"dropped_total": dropped,
			"queue_cap":     cap(m.queue),
		}).Warn("notify queue full, caption dropped")
	}
}

// Close drains the queue, then stops the delivery loop. The context
// bounds how long the drain may take.
func (m *Manager) Close(ctx context.Context) error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	close(m.stop)
	m.mu.Unlock()

	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) loop() {
	defer close(m.done)
	for {
		select {
		case caption := <-m.queue:
			m.send(caption)
		case <-m.stop:
			for {
				select {
				case caption := <-m.queue:
					m.send(caption)
				default:
					return
				}
			}
		}
	}
}

func (m *Manager) send(caption string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultSendTimeout)
	defer cancel()
	if err := m.notifier.Notify(ctx, caption); err != nil {
		log.WithError(err).Error("caption delivery failed")
	}
}

func (m *Manager) droppedTotal() uint64 {
	if m == nil {
		return 0
	}
	return atomic.LoadUint64(&m.dropped)
}
