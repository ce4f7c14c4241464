package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownChannel(t *testing.T) {
	for _, ch := range Channels() {
		assert.True(t, knownChannel(ch), ch)
	}
	assert.False(t, knownChannel("events:bogus"))
	assert.False(t, knownChannel(""))
}

func TestSubscribeEnforcesChannelSet(t *testing.T) {
	l := NewNotifyListener("postgres://unused", NewDispatcher(nil))

	err := l.Subscribe(context.Background(), "events:bogus")
	require.ErrorContains(t, err, "unknown event channel")

	err = l.Unsubscribe(context.Background(), "events:bogus")
	require.ErrorContains(t, err, "unknown event channel")

	// Known channel, but Start never ran.
	err = l.Subscribe(context.Background(), ChannelJobs)
	require.ErrorContains(t, err, "not established")
}
