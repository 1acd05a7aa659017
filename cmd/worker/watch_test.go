package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/realtime"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFormatEvent(t *testing.T) {
	ev := realtime.Event{
		PublishedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Projects: []domain.Project{
			{Status: domain.StatusActive},
			{Status: domain.StatusFinished},
			{Status: domain.StatusFinished},
		},
	}

	assert.Equal(t, "2026-01-02T03:04:05Z active=1 finished=2 total=3", formatEvent(ev))
}

func TestRunWatch(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- runWatch(ctx, watchOptions{addr: mr.Addr(), channel: "tracker:test"}, out)
	}()

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub("tracker:test")["tracker:test"] > 0
	}, 2*time.Second, 10*time.Millisecond)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	pub := realtime.NewPublisher(client, "tracker:test", nil)
	require.NoError(t, pub.Publish(ctx, realtime.Event{
		Projects: []domain.Project{{Status: domain.StatusActive}},
	}))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "active=1 finished=0 total=1")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestRunWatch_RequiresRedis(t *testing.T) {
	err := runWatch(context.Background(), watchOptions{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "dev\n", out.String())
}
