package notify

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isokohq/isoko-api/pkg/config"
	"github.com/isokohq/isoko-api/pkg/logger"
)

type captureSender struct {
	mu       sync.Mutex
	sent     []Email
	failures int // fail the first N sends
	calls    int
}

func (s *captureSender) Send(_ context.Context, e Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return fmt.Errorf("smtp unavailable")
	}
	s.sent = append(s.sent, e)
	return nil
}

func (s *captureSender) delivered() []Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Email(nil), s.sent...)
}

func testConfig() config.NotifyConfig {
	return config.NotifyConfig{QueueSize: 4, MaxAttempts: 3, BackoffMS: 1}
}

func TestDispatcherDelivers(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, testConfig(), logger.Nop())

	ok := d.Enqueue(Email{To: "owner@isoko.rw", Subject: "New inquiry"})
	require.True(t, ok)
	d.Close()

	sent := sender.delivered()
	require.Len(t, sent, 1)
	assert.Equal(t, "New inquiry", sent[0].Subject)
}

func TestDispatcherRetriesTransientFailures(t *testing.T) {
	sender := &captureSender{failures: 2}
	d := NewDispatcher(sender, testConfig(), logger.Nop())

	require.True(t, d.Enqueue(Email{To: "owner@isoko.rw"}))
	d.Close()

	assert.Len(t, sender.delivered(), 1, "third attempt should succeed")
	assert.Equal(t, 3, sender.calls)
}

func TestDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	sender := &captureSender{failures: 10}
	d := NewDispatcher(sender, testConfig(), logger.Nop())

	require.True(t, d.Enqueue(Email{To: "owner@isoko.rw"}))
	d.Close()

	assert.Empty(t, sender.delivered())
	assert.Equal(t, 3, sender.calls)
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, testConfig(), logger.Nop())
	d.Close()

	assert.False(t, d.Enqueue(Email{To: "owner@isoko.rw"}))
}
