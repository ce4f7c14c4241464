package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// catchupLimit is the maximum number of missed events replayed when a
// gap in db_event_id is detected on a channel. Larger gaps are logged
// and skipped; consumers must tolerate loss beyond this window.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when a
// handler registration subscribes to a new PG channel.
const listenTimeout = 10 * time.Second

// Handler consumes one event payload from a channel. Handlers run
// synchronously on the dispatch goroutine; long work should be handed
// off internally.
type Handler func(channel string, payload map[string]any)

// Dispatcher routes NOTIFY payloads to registered in-process handlers.
// Each process has one Dispatcher instance.
//
// Persistent events carry a db_event_id injected at publish time. The
// dispatcher tracks the last id seen per channel and uses the events
// table to close two holes in the NOTIFY stream: payloads truncated to
// the 8000-byte envelope are re-fetched by id, and id gaps (dropped
// notifications, listener reconnects) are replayed in order before the
// current event is delivered.
type Dispatcher struct {
	// Handler registrations: channel → handlers
	handlers  map[string][]Handler
	handlerMu sync.RWMutex

	// CatchupQuerier for truncation recovery and gap replay
	querier CatchupQuerier

	// NotifyListener for dynamic LISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex

	// Last db_event_id delivered per channel
	lastID map[string]int64
	idMu   sync.Mutex
}

// NewDispatcher creates a new Dispatcher. The querier may be nil, in
// which case truncated payloads and gaps are logged and skipped.
func NewDispatcher(querier CatchupQuerier) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		querier:  querier,
		lastID:   make(map[string]int64),
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN.
// Called once during startup after both Dispatcher and NotifyListener
// are created.
func (d *Dispatcher) SetListener(l *NotifyListener) {
	d.listenerMu.Lock()
	defer d.listenerMu.Unlock()
	d.listener = l
}

// Register adds a handler for a channel and starts LISTEN on first
// registration. LISTEN is synchronous so the handler cannot miss events
// published after Register returns.
func (d *Dispatcher) Register(channel string, h Handler) error {
	d.handlerMu.Lock()
	needsListen := len(d.handlers[channel]) == 0
	d.handlers[channel] = append(d.handlers[channel], h)
	d.handlerMu.Unlock()

	if !needsListen {
		return nil
	}

	d.listenerMu.RLock()
	l := d.listener
	d.listenerMu.RUnlock()
	if l == nil {
		return nil
	}

	listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()
	if err := l.Subscribe(listenCtx, channel); err != nil {
		return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
	}
	return nil
}

// Broadcast delivers one raw NOTIFY payload to the channel's handlers,
// recovering truncated payloads and replaying gaps first. Called by the
// NotifyListener receive loop.
func (d *Dispatcher) Broadcast(channel string, raw []byte) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		slog.Warn("Dropping malformed NOTIFY payload", "channel", channel, "error", err)
		return
	}

	eventID := dbEventID(payload)
	if eventID == 0 {
		// Transient event — no durable row, no ordering guarantees.
		d.dispatch(channel, payload)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
	defer cancel()

	// Truncated envelope: fetch the full payload from the events table.
	if truncated, _ := payload["truncated"].(bool); truncated {
		full := d.fetchFull(ctx, channel, eventID)
		if full == nil {
			return
		}
		payload = full
	}

	d.replayGap(ctx, channel, eventID)
	d.dispatch(channel, payload)
	d.markSeen(channel, eventID)
}

// fetchFull loads a truncated event's stored payload by id.
func (d *Dispatcher) fetchFull(ctx context.Context, channel string, eventID int64) map[string]any {
	if d.querier == nil {
		slog.Warn("Truncated event dropped: no catchup querier",
			"channel", channel, "db_event_id", eventID)
		return nil
	}
	evt, err := d.querier.GetEvent(ctx, eventID)
	if err != nil || evt == nil {
		slog.Error("Failed to recover truncated event",
			"channel", channel, "db_event_id", eventID, "error", err)
		return nil
	}
	payload := evt.Payload
	payload["db_event_id"] = evt.ID
	return payload
}

// replayGap delivers any events between the last seen id and the
// current one, in order. Gaps wider than catchupLimit are logged and
// skipped rather than paginated.
func (d *Dispatcher) replayGap(ctx context.Context, channel string, eventID int64) {
	d.idMu.Lock()
	last := d.lastID[channel]
	d.idMu.Unlock()

	if last == 0 || eventID <= last+1 {
		return
	}
	if d.querier == nil {
		slog.Warn("Event gap detected but no catchup querier",
			"channel", channel, "last_id", last, "db_event_id", eventID)
		return
	}

	missed, err := d.querier.GetEventsSince(ctx, channel, last, catchupLimit+1)
	if err != nil {
		slog.Error("Gap replay query failed",
			"channel", channel, "last_id", last, "error", err)
		return
	}
	if len(missed) > catchupLimit {
		slog.Warn("Event gap exceeds replay limit; skipping replay",
			"channel", channel, "last_id", last, "db_event_id", eventID)
		return
	}

	for _, evt := range missed {
		if evt.ID >= eventID {
			break
		}
		payload := evt.Payload
		payload["db_event_id"] = evt.ID
		d.dispatch(channel, payload)
		d.markSeen(channel, evt.ID)
	}
}

// dispatch invokes every handler registered for the channel.
func (d *Dispatcher) dispatch(channel string, payload map[string]any) {
	d.handlerMu.RLock()
	handlers := make([]Handler, len(d.handlers[channel]))
	copy(handlers, d.handlers[channel])
	d.handlerMu.RUnlock()

	for _, h := range handlers {
		h(channel, payload)
	}
}

func (d *Dispatcher) markSeen(channel string, eventID int64) {
	d.idMu.Lock()
	if eventID > d.lastID[channel] {
		d.lastID[channel] = eventID
	}
	d.idMu.Unlock()
}

// dbEventID extracts the injected db_event_id, or 0 for transient events.
func dbEventID(payload map[string]any) int64 {
	switch v := payload["db_event_id"].(type) {
	case float64:
		return int64(v)
	case json.Number:
		id, _ := v.Int64()
		return id
	default:
		return 0
	}
}
