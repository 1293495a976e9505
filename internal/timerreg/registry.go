// Package timerreg owns the poll timers of every watched account.
//
// Timers are grouped per account and keyed by (account, attribute). At most one
// live Handle exists per key: scheduling a key cancels the handle it replaces.
// Each Handle carries its own context, cancelled together with the timer, that
// the callback uses as cancellation token for the work it starts.
//
// The Registry never calls user code while holding its own lock, and cancelling
// a handle never waits for its callback. Callbacks are therefore free to call
// back into the Registry, directly or through the code they invoke. Ordering
// is kept per key instead: a handle does not run before the guarded section
// of the handle it succeeds has returned.
package timerreg

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/wallet"
)

// Key identifies one poll cycle.
type Key struct {
	AccountID string
	Attribute wallet.Attribute
}

// Func is a timer callback. ctx is the handle's context and is done once the
// handle has been cancelled.
type Func func(ctx context.Context, h *Handle)

// Handle is a scheduled (or fired, still running) timer.
//
// A Handle is live from the moment it is scheduled until it is cancelled,
// replaced by a newer handle of the same key, halted, or until its parent
// context is done.
type Handle struct {
	key    Key
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	// section is held while a guarded function runs.
	section sync.Mutex

	mu        sync.Mutex // protects cancelled, timer and after
	cancelled bool
	timer     *time.Timer
	after     *Handle // predecessor under the same key, until drained
}

// Key returns the key the handle was scheduled under.
func (h *Handle) Key() Key {
	return h.key
}

// Context returns the handle's cancellation token.
//
// The context is done once the handle is cancelled, replaced or halted, and
// is meant to bound the work the callback starts.
func (h *Handle) Context() context.Context {
	return h.ctx
}

// Live reports whether the handle has been neither cancelled nor replaced.
func (h *Handle) Live() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return !h.cancelled && h.ctx.Err() == nil
}

// Guard runs f only while the handle is live and reports whether it ran.
//
// Guard is the gate for side effects of a callback: a result that arrives
// after cancellation is dropped because Guard refuses to run it. An f that
// already started runs to completion; cancelling does not wait for it, but the
// next handle of the same key does. Calls are serialized per handle and f may
// call back into the Registry.
//
// Parameters:
//   - f: the side effect to run.
//
// Returns:
//   - true if f ran, false if the handle was no longer live.
func (h *Handle) Guard(f func()) bool {
	h.section.Lock()
	defer h.section.Unlock()

	if !h.Live() {
		return false
	}

	f()
	return true
}

// takeAfter detaches and returns the predecessor of h.
func (h *Handle) takeAfter() *Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev := h.after
	h.after = nil
	return prev
}

// drain cancels h and waits for a guarded section of h that is running. Once
// it returns, h has no side effect left to perform.
func (h *Handle) drain() {
	h.stop()

	h.section.Lock()
	defer h.section.Unlock()
}

// fire is the timer body of h. It drains every predecessor of h that never
// got to drain its own.
func (h *Handle) fire(fn Func) {
	for prev := h.takeAfter(); prev != nil; prev = prev.takeAfter() {
		prev.drain()
	}

	fn(h.ctx, h)
}

// stop cancels h. It never blocks on the callback.
func (h *Handle) stop() {
	h.mu.Lock()
	h.cancelled = true
	if h.timer != nil {
		h.timer.Stop()
	}
	h.mu.Unlock()

	h.cancel()
}

func stopAll(handles []*Handle) {
	for _, h := range handles {
		h.stop()
	}
}

// Registry stores the handles of every account.
//
// An account has a timer group from its first Schedule until CancelAll or
// Close. A group may hold fewer keys than were scheduled once cycles are
// halted; it still counts for Exists.
type Registry struct {
	mu     sync.Mutex
	groups map[string]map[wallet.Attribute]*Handle

	// latest remembers the newest handle of every key, including cancelled
	// ones, so a later handle of the key can wait for it.
	latest map[Key]*Handle
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		groups: make(map[string]map[wallet.Attribute]*Handle),
		latest: make(map[Key]*Handle),
	}
}

// Schedule arranges for fn to run after delay under key.
//
// Any handle previously registered for the same key is cancelled. The new
// handle's context derives from ctx, so cancelling ctx cancels the handle.
//
// Parameters:
//   - ctx: parent of the handle's context.
//   - key: the cycle the timer belongs to.
//   - delay: how long to wait before calling fn; zero runs it immediately.
//   - fn: the callback.
//
// Returns:
//   - The live handle of key.
func (r *Registry) Schedule(ctx context.Context, key Key, delay time.Duration, fn Func) *Handle {
	r.mu.Lock()
	h, prev := r.scheduleLocked(ctx, key, delay, fn)
	r.mu.Unlock()

	if prev != nil {
		prev.stop()
	}

	return h
}

// Reschedule schedules the next run of the cycle h belongs to.
//
// It is the only way a callback should arm its successor: it refuses when h is
// no longer the live handle of its key, so a callback that outlived its
// cancellation cannot revive the cycle.
//
// Returns:
//   - The new handle, or nil when h was cancelled, replaced or halted.
func (r *Registry) Reschedule(h *Handle, delay time.Duration, fn Func) *Handle {
	r.mu.Lock()
	if r.groups[h.key.AccountID][h.key.Attribute] != h || !h.Live() {
		r.mu.Unlock()
		return nil
	}
	next, prev := r.scheduleLocked(h.parent, h.key, delay, fn)
	r.mu.Unlock()

	if prev != nil {
		prev.stop()
	}

	return next
}

// scheduleLocked registers a new handle for key and returns it along with the
// handle it replaced, which the caller stops once r.mu is released.
func (r *Registry) scheduleLocked(ctx context.Context, key Key, delay time.Duration, fn Func) (*Handle, *Handle) {
	group, ok := r.groups[key.AccountID]
	if !ok {
		group = make(map[wallet.Attribute]*Handle)
		r.groups[key.AccountID] = group
	}

	prev := group[key.Attribute]

	hctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		key:    key,
		parent: ctx,
		ctx:    hctx,
		cancel: cancel,
		after:  r.latest[key],
	}
	group[key.Attribute] = h
	r.latest[key] = h

	h.mu.Lock()
	h.timer = time.AfterFunc(delay, func() { h.fire(fn) })
	h.mu.Unlock()

	return h, prev
}

// Halt cancels h and drops it from its group without removing the group, so
// the account still Exists but the cycle no longer shows in Active or Keys.
// It is a no-op when h is no longer the registered handle of its key.
func (r *Registry) Halt(h *Handle) {
	r.mu.Lock()
	group := r.groups[h.key.AccountID]
	if group[h.key.Attribute] != h {
		r.mu.Unlock()
		return
	}
	delete(group, h.key.Attribute)
	r.mu.Unlock()

	h.stop()
}

// CancelAll cancels and forgets every handle of accountID. It is a no-op for
// unknown accounts.
func (r *Registry) CancelAll(accountID string) {
	r.mu.Lock()
	handles := r.detachLocked(accountID)
	r.mu.Unlock()

	stopAll(handles)
}

// detachLocked removes the group of accountID and returns its handles.
func (r *Registry) detachLocked(accountID string) []*Handle {
	group := r.groups[accountID]
	handles := make([]*Handle, 0, len(group))
	for _, h := range group {
		handles = append(handles, h)
	}
	delete(r.groups, accountID)

	return handles
}

// Exists reports whether accountID has a timer group.
func (r *Registry) Exists(accountID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.groups[accountID]
	return ok
}

// Active reports whether key currently has a live handle. Halted cycles are
// not active.
func (r *Registry) Active(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.groups[key.AccountID][key.Attribute]
	return ok && h.Live()
}

// Keys returns the keys that currently have a live handle, in no particular
// order. Halted cycles are not included.
func (r *Registry) Keys() []Key {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]Key, 0, len(r.groups)*3)
	for _, group := range r.groups {
		for _, h := range group {
			if h.Live() {
				keys = append(keys, h.key)
			}
		}
	}

	return keys
}

// Close cancels every handle of every account.
func (r *Registry) Close() {
	r.mu.Lock()
	var handles []*Handle
	for accountID := range r.groups {
		handles = append(handles, r.detachLocked(accountID)...)
	}
	clear(r.latest)
	r.mu.Unlock()

	stopAll(handles)
}
