package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// listenCmd is a LISTEN/UNLISTEN statement queued for the receive loop,
// which is the sole goroutine that touches the pgx connection.
type listenCmd struct {
	sql    string
	result chan error
}

// NotifyListener owns the dedicated LISTEN connection for the pipeline's
// event channels (jobs, assignments, delivery) and hands raw
// notifications to the Dispatcher. The channel set is closed: Start
// subscribes to every channel in Channels(), and Subscribe rejects
// anything outside that set.
type NotifyListener struct {
	connString string
	conn       *pgx.Conn
	connMu     sync.Mutex
	dispatcher *Dispatcher

	// active tracks which known channels currently have a LISTEN issued;
	// reconnect re-issues exactly these.
	active   map[string]bool
	activeMu sync.RWMutex

	// cmdCh serializes LISTEN/UNLISTEN through the receive loop. This
	// avoids the "conn busy" race between WaitForNotification and Exec.
	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewNotifyListener creates the listener. The connString comes from
// database.Config.ConnString().
func NewNotifyListener(connString string, dispatcher *Dispatcher) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		dispatcher: dispatcher,
		active:     make(map[string]bool),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// Start establishes the dedicated connection, begins the receive loop,
// and issues LISTEN for every pipeline channel so no NOTIFY fired after
// Start returns can be lost, even before any handler registers.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	// The receive loop gets a cancellable context so Stop() can signal it
	// to exit before closing the connection.
	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	for _, ch := range Channels() {
		if err := l.Subscribe(ctx, ch); err != nil {
			l.Stop(ctx)
			return err
		}
	}

	slog.Info("NotifyListener started", "channels", Channels())
	return nil
}

// Running reports whether the listener holds an active receive loop.
// Used by the health endpoint.
func (l *NotifyListener) Running() bool {
	return l.running.Load()
}

// knownChannel reports whether ch is one of the pipeline's event channels.
func knownChannel(ch string) bool {
	for _, c := range Channels() {
		if c == ch {
			return true
		}
	}
	return false
}

// Subscribe issues LISTEN for one of the pipeline channels. The command
// runs on the receive loop to avoid concurrent pgx access. Subscribing
// to an already-active channel is a no-op.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	if !knownChannel(channel) {
		return fmt.Errorf("unknown event channel %q", channel)
	}

	l.activeMu.Lock()
	if l.active[channel] {
		l.activeMu.Unlock()
		return nil
	}
	l.activeMu.Unlock()

	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	if err := l.execOnLoop(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", channel, err)
	}

	l.activeMu.Lock()
	l.active[channel] = true
	l.activeMu.Unlock()
	slog.Debug("Subscribed to event channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for a previously subscribed channel.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	if !knownChannel(channel) {
		return fmt.Errorf("unknown event channel %q", channel)
	}

	l.activeMu.Lock()
	if !l.active[channel] {
		l.activeMu.Unlock()
		return nil
	}
	l.activeMu.Unlock()

	if !l.running.Load() {
		return nil
	}

	if err := l.execOnLoop(ctx, "UNLISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", channel, err)
	}

	l.activeMu.Lock()
	delete(l.active, channel)
	l.activeMu.Unlock()
	return nil
}

// execOnLoop queues one statement for the receive loop and waits for the
// result.
func (l *NotifyListener) execOnLoop(ctx context.Context, sql string) error {
	cmd := listenCmd{sql: sql, result: make(chan error, 1)}

	select {
	case l.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop waits for notifications and hands them to the Dispatcher.
// It is the sole goroutine touching the pgx connection; LISTEN/UNLISTEN
// statements arrive over cmdCh and run between waits.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainCmds(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short wait timeout so queued LISTEN/UNLISTEN commands are
		// picked up promptly.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.dispatcher.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// drainCmds executes every queued LISTEN/UNLISTEN statement.
func (l *NotifyListener) drainCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmdCh:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()

			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}

			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff
// and re-issues LISTEN for every active channel. Any NOTIFY fired while
// disconnected is recovered afterwards by the Dispatcher's gap replay
// against the events table.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		l.conn = conn
		l.relisten(ctx, conn)
		slog.Info("NotifyListener reconnected")
		return
	}
}

// relisten re-issues LISTEN for every active channel on a fresh
// connection.
func (l *NotifyListener) relisten(ctx context.Context, conn *pgx.Conn) {
	l.activeMu.RLock()
	defer l.activeMu.RUnlock()
	for ch := range l.active {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
		}
	}
}

// Stop signals the receive loop to exit, waits for it to finish, then
// closes the connection. The loop must be gone before Close to avoid a
// race between WaitForNotification and conn.Close().
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
