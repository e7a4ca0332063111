package graceful

import (
	"context"
	"net/http"
)

// WaitToShutdownHTTP synchronously waits for shutdown signal and shuts down
// the http server, draining in-flight requests within the timeout.
func (s *Shutdown) WaitToShutdownHTTP(server *http.Server, subscriber string) error {
	shutdown, done := s.ShutdownSignal(subscriber)

	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	err := server.Shutdown(ctx)

	close(done)

	return err
}
