package delivery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/pkg/services"
)

func seedBroadcast(store *fakeStore, externalID, content string, bucket int) {
	_ = store.RecordBroadcast(context.Background(), externalID, services.BroadcastPayload{
		Content:            content,
		ChatID:             "assignments",
		TransportMessageID: "bc-1",
		ClickBucket:        bucket,
	})
}

func TestAfterClickCrossesBucket(t *testing.T) {
	transport := &fakeTransport{}
	store := newFakeStore()
	seedBroadcast(store, "TT-4821", "Sec 3 E-Math @ Tampines", 0)
	editor := NewEditor(testDeliveryConfig(), transport, store, nil)

	err := editor.AfterClick(context.Background(), "TT-4821", 6)
	require.NoError(t, err)

	require.Len(t, transport.broadcasts, 1)
	assert.Equal(t, "bc-1", transport.broadcasts[0].editTarget)
	assert.Contains(t, transport.broadcasts[0].content, "5+ tutors interested")

	// Stored state: new bucket and edit target, content stays the base.
	record, err := store.GetBroadcast(context.Background(), "TT-4821")
	require.NoError(t, err)
	assert.Equal(t, 5, record.ClickBucket)
	assert.Equal(t, "Sec 3 E-Math @ Tampines", record.Content)
}

func TestAfterClickBelowFirstBucket(t *testing.T) {
	transport := &fakeTransport{}
	store := newFakeStore()
	seedBroadcast(store, "TT-4821", "body", 0)
	editor := NewEditor(testDeliveryConfig(), transport, store, nil)

	require.NoError(t, editor.AfterClick(context.Background(), "TT-4821", 3))

	assert.Empty(t, transport.broadcasts)
}

func TestAfterClickSameBucketNoEdit(t *testing.T) {
	transport := &fakeTransport{}
	store := newFakeStore()
	seedBroadcast(store, "TT-4821", "body", 10)
	editor := NewEditor(testDeliveryConfig(), transport, store, nil)

	// 12 clicks is still inside the 10 bucket.
	require.NoError(t, editor.AfterClick(context.Background(), "TT-4821", 12))

	assert.Empty(t, transport.broadcasts)
}

func TestAfterClickNeverBroadcast(t *testing.T) {
	transport := &fakeTransport{}
	editor := NewEditor(testDeliveryConfig(), transport, newFakeStore(), nil)

	require.NoError(t, editor.AfterClick(context.Background(), "unknown", 50))

	assert.Empty(t, transport.broadcasts)
}

func TestAfterClickSkipsBucketLevels(t *testing.T) {
	transport := &fakeTransport{}
	store := newFakeStore()
	seedBroadcast(store, "TT-4821", "body", 0)
	editor := NewEditor(testDeliveryConfig(), transport, store, nil)

	// A burst of clicks jumps straight to the 25 bucket.
	require.NoError(t, editor.AfterClick(context.Background(), "TT-4821", 30))

	require.Len(t, transport.broadcasts, 1)
	assert.Contains(t, transport.broadcasts[0].content, "25+ tutors interested")

	record, err := store.GetBroadcast(context.Background(), "TT-4821")
	require.NoError(t, err)
	assert.Equal(t, 25, record.ClickBucket)
}
