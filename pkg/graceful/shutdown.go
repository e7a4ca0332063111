// Package graceful manages service shutdown on process termination.
package graceful

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultTimeout limits how long subscribers may take to finish.
const DefaultTimeout = 10 * time.Second

// Shutdown propagates a termination signal to subscribers and waits for
// their confirmations.
type Shutdown struct {
	Timeout time.Duration

	mu          sync.Mutex
	subscribers map[string]chan struct{}
	signal      chan struct{}
}

// Close invokes shutdown.
func (s *Shutdown) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signal != nil {
		close(s.signal)
		s.signal = nil
	}
}

// EnableGracefulShutdown schedules shutdown on SIGTERM or SIGINT.
func (s *Shutdown) EnableGracefulShutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.signal != nil {
		return
	}

	sig := make(chan struct{})
	s.signal = sig

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-exit
		close(sig)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.signal != nil {
			s.signal = nil
		}
	}()
}

// Wait blocks until shutdown is invoked and all subscribers have confirmed
// termination or timeout has elapsed.
func (s *Shutdown) Wait() error {
	s.mu.Lock()
	sig := s.signal
	s.mu.Unlock()

	if sig != nil {
		<-sig
	}

	deadline := time.After(s.timeout())

	s.mu.Lock()
	defer s.mu.Unlock()

	for subscriber, done := range s.subscribers {
		select {
		case <-done:
			continue
		case <-deadline:
			return fmt.Errorf("shutdown deadline exceeded while waiting for %s", subscriber)
		}
	}

	return nil
}

// ShutdownSignal subscribes to termination.
//
// Returned shutdown channel is closed when termination starts, subscriber
// must close done once it has finished its own shutdown.
func (s *Shutdown) ShutdownSignal(subscriber string) (shutdown <-chan struct{}, done chan<- struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscribers == nil {
		s.subscribers = make(map[string]chan struct{})
	}

	if d, found := s.subscribers[subscriber]; found {
		return s.signal, d
	}

	d := make(chan struct{}, 1)
	s.subscribers[subscriber] = d

	return s.signal, d
}

func (s *Shutdown) timeout() time.Duration {
	if s.Timeout == 0 {
		return DefaultTimeout
	}

	return s.Timeout
}
