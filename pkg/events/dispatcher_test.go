package events

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier serves canned events keyed by id. Events must be inserted
// in id order.
type fakeQuerier struct {
	mu     sync.Mutex
	events []StoredEvent
	calls  int
}

func (f *fakeQuerier) add(id int64, channel string, payload map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, StoredEvent{
		ID: id, Channel: channel, Payload: payload, CreatedAt: time.Now(),
	})
}

func (f *fakeQuerier) GetEventsSince(_ context.Context, channel string, sinceID int64, limit int) ([]StoredEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	var out []StoredEvent
	for _, evt := range f.events {
		if evt.Channel == channel && evt.ID > sinceID {
			out = append(out, evt)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeQuerier) GetEvent(_ context.Context, id int64) (*StoredEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, evt := range f.events {
		if evt.ID == id {
			e := evt
			return &e, nil
		}
	}
	return nil, nil
}

// recorder collects dispatched payloads in order.
type recorder struct {
	mu       sync.Mutex
	payloads []map[string]any
}

func (r *recorder) handler(_ string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.payloads))
	for i, p := range r.payloads {
		out[i], _ = p["type"].(string)
	}
	return out
}

func (r *recorder) ids() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, len(r.payloads))
	for i, p := range r.payloads {
		out[i] = dbEventID(p)
	}
	return out
}

func TestDispatcherDeliversToRegisteredChannel(t *testing.T) {
	d := NewDispatcher(nil)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelJobs, rec.handler))

	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","job_id":"j1","db_event_id":1}`))
	d.Broadcast(ChannelAssignments, []byte(`{"type":"assignment.upserted","db_event_id":2}`))

	assert.Equal(t, []string{"job.status"}, rec.types())
}

func TestDispatcherTransientEventBypassesTracking(t *testing.T) {
	d := NewDispatcher(nil)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelJobs, rec.handler))

	// No db_event_id — delivered as-is and must not disturb gap state.
	d.Broadcast(ChannelJobs, []byte(`{"type":"stage.metric","stage":"extract"}`))
	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","db_event_id":5}`))
	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","db_event_id":6}`))

	assert.Equal(t, []string{"stage.metric", "job.status", "job.status"}, rec.types())
}

func TestDispatcherRecoversTruncatedPayload(t *testing.T) {
	q := &fakeQuerier{}
	q.add(3, ChannelAssignments, map[string]any{
		"type": "assignment.upserted", "assignment_id": "a1", "agency_id": "ag1",
	})

	d := NewDispatcher(q)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelAssignments, rec.handler))

	d.Broadcast(ChannelAssignments, []byte(`{"type":"assignment.upserted","truncated":true,"db_event_id":3}`))

	require.Len(t, rec.payloads, 1)
	assert.Equal(t, "ag1", rec.payloads[0]["agency_id"])
	assert.Equal(t, int64(3), dbEventID(rec.payloads[0]))
}

func TestDispatcherTruncatedWithoutQuerierDropped(t *testing.T) {
	d := NewDispatcher(nil)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelJobs, rec.handler))

	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","truncated":true,"db_event_id":3}`))
	assert.Empty(t, rec.payloads)
}

func TestDispatcherReplaysGapInOrder(t *testing.T) {
	q := &fakeQuerier{}
	q.add(2, ChannelJobs, map[string]any{"type": "job.status", "job_id": "j2"})
	q.add(3, ChannelJobs, map[string]any{"type": "job.status", "job_id": "j3"})

	d := NewDispatcher(q)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelJobs, rec.handler))

	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","job_id":"j1","db_event_id":1}`))
	// ids 2 and 3 were dropped; id 4 arrives and triggers replay.
	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","job_id":"j4","db_event_id":4}`))

	assert.Equal(t, []int64{1, 2, 3, 4}, rec.ids())
}

func TestDispatcherNoReplayWithoutBaseline(t *testing.T) {
	q := &fakeQuerier{}
	q.add(1, ChannelJobs, map[string]any{"type": "job.status"})

	d := NewDispatcher(q)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelJobs, rec.handler))

	// First event seen on the channel — nothing to measure a gap against.
	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","db_event_id":50}`))

	assert.Equal(t, []int64{50}, rec.ids())
	q.mu.Lock()
	defer q.mu.Unlock()
	assert.Zero(t, q.calls)
}

func TestDispatcherGapBeyondLimitSkipped(t *testing.T) {
	q := &fakeQuerier{}
	for i := int64(2); i <= 2+catchupLimit; i++ {
		q.add(i, ChannelJobs, map[string]any{"type": "job.status", "job_id": fmt.Sprintf("j%d", i)})
	}

	d := NewDispatcher(q)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelJobs, rec.handler))

	d.Broadcast(ChannelJobs, []byte(`{"type":"job.status","db_event_id":1}`))
	d.Broadcast(ChannelJobs, []byte(fmt.Sprintf(`{"type":"job.status","db_event_id":%d}`, 3+catchupLimit)))

	// The gap is too wide to replay: only the two live events arrive.
	assert.Equal(t, []int64{1, int64(3 + catchupLimit)}, rec.ids())
}

func TestDispatcherMalformedPayloadDropped(t *testing.T) {
	d := NewDispatcher(nil)
	rec := &recorder{}
	require.NoError(t, d.Register(ChannelJobs, rec.handler))

	d.Broadcast(ChannelJobs, []byte("not json"))
	assert.Empty(t, rec.payloads)
}

func TestDispatcherMultipleHandlersSameChannel(t *testing.T) {
	d := NewDispatcher(nil)
	a := &recorder{}
	b := &recorder{}
	require.NoError(t, d.Register(ChannelDelivery, a.handler))
	require.NoError(t, d.Register(ChannelDelivery, b.handler))

	d.Broadcast(ChannelDelivery, []byte(`{"type":"delivery.sent","db_event_id":1}`))

	assert.Len(t, a.payloads, 1)
	assert.Len(t, b.payloads, 1)
}
