package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mbelyaev/eventmap-client/internal/client/models"
	"github.com/mbelyaev/eventmap-client/internal/client/session"
	"github.com/mbelyaev/eventmap-client/internal/logging"
)

// lockedBuffer makes a bytes.Buffer safe to share between the watcher
// goroutine and the test's assertions.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSessionWatcher_LogsTransitions(t *testing.T) {
	var buf lockedBuffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	store := session.NewStore(log)

	a := &App{store: store, log: log}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.StartSessionWatcher(ctx)

	store.Replace(&models.User{ID: "7"})
	require.Eventually(t, func() bool {
		out := buf.String()
		return strings.Contains(out, "session established") && strings.Contains(out, "user_id=7")
	}, time.Second, 5*time.Millisecond)

	store.Replace(nil)
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "session cleared")
	}, time.Second, 5*time.Millisecond)
}

func TestSessionWatcher_StopsOnContextCancel(t *testing.T) {
	var buf lockedBuffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	store := session.NewStore(log)

	a := &App{store: store, log: log}

	ctx, cancel := context.WithCancel(context.Background())
	a.StartSessionWatcher(ctx)
	cancel()

	// after cancellation the watcher unsubscribes; once that has happened,
	// a fresh replace is no longer mirrored into the log
	seq := 0
	require.Eventually(t, func() bool {
		seq++
		id := "late-" + strconv.Itoa(seq)
		store.Replace(&models.User{ID: id})
		time.Sleep(10 * time.Millisecond)
		return !strings.Contains(buf.String(), "user_id="+id)
	}, 2*time.Second, 5*time.Millisecond)
}