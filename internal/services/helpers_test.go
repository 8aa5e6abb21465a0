package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"poapregistry/internal/domain"
	"poapregistry/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	ownerAddr    = "poap1owner"
	strangerAddr = "poap1stranger"
	aliceAddr    = "poap1alice"
	bobAddr      = "poap1bob"
)

// fakeAddresses accepts lowercase strings with the poap1 prefix.
type fakeAddresses struct{}

func (fakeAddresses) Validate(addr string) (string, error) {
	if !strings.HasPrefix(addr, "poap1") || strings.ToLower(addr) != addr {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidAddress, addr)
	}
	return addr, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
	err  error
}

func (n *recordingNotifier) Publish(ctx context.Context, note domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, note)
	return n.err
}

type observation struct {
	command string
	code    string
}

type recordingMetrics struct {
	mu  sync.Mutex
	obs []observation
}

func (m *recordingMetrics) ObserveCommand(command, code string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = append(m.obs, observation{command: command, code: code})
}

// inTx runs fn against a fresh transaction on store and fails the test on store errors.
func inTx(t *testing.T, store domain.Store, fn func(kv domain.KVStore) error) error {
	t.Helper()
	var opErr error
	err := store.RunInTx(context.Background(), func(kv domain.KVStore) error {
		opErr = fn(kv)
		return opErr
	})
	if opErr != nil {
		return opErr
	}
	require.NoError(t, err)
	return nil
}

func devConMsg() domain.RegisterEventMsg {
	return domain.RegisterEventMsg{
		Name:        "DevCon",
		Image:       "https://x/y.png",
		Description: "annual",
		StartTime:   1000,
		EndTime:     2000,
	}
}

// seedEvent registers devConMsg owned by ownerAddr at time 500.
func seedEvent(t *testing.T, store *memory.Store) {
	t.Helper()
	err := inTx(t, store, func(kv domain.KVStore) error {
		_, err := NewEventRegistry().RegisterEvent(context.Background(), kv, domain.Env{Time: 500, Sender: ownerAddr}, devConMsg())
		return err
	})
	require.NoError(t, err)
}
