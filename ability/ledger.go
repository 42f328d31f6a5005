package ability

import "time"

// Ledger tracks when each ability becomes ready again and holds a short
// global lock after any cast.
type Ledger struct {
	readyAt     map[ID]time.Duration
	lockedUntil time.Duration
}

func NewLedger() *Ledger {
	return &Ledger{readyAt: make(map[ID]time.Duration)}
}

// CanUse reports whether id may be executed at now. An ability is ready
// again exactly when its cooldown has elapsed.
func (l *Ledger) CanUse(id ID, now time.Duration) bool {
	if l == nil {
		return false
	}
	if _, ok := Lookup(id); !ok {
		return false
	}
	if l.Locked(now) {
		return false
	}
	if at, ok := l.readyAt[id]; ok && at > now {
		return false
	}
	return true
}

// Execute starts the cooldown, takes the lock and runs the ability. It does
// nothing and returns false when the ability is not usable or the cast
// direction is degenerate.
func (l *Ledger) Execute(id ID, ctx Context, now time.Duration) bool {
	if !l.CanUse(id, now) {
		return false
	}
	dir, ok := ctx.Direction.Normalize()
	if !ok {
		return false
	}
	a, _ := Lookup(id)
	if l.readyAt == nil {
		l.readyAt = make(map[ID]time.Duration)
	}
	l.readyAt[id] = now + a.Cooldown
	l.lockedUntil = now + ExecuteLock
	a.execute(ctx, dir)
	return true
}

// Locked reports whether a recent cast still blocks every ability.
func (l *Ledger) Locked(now time.Duration) bool {
	if l == nil {
		return false
	}
	return now < l.lockedUntil
}

// Remaining is how long until id is off cooldown.
func (l *Ledger) Remaining(id ID, now time.Duration) time.Duration {
	if l == nil {
		return 0
	}
	at, ok := l.readyAt[id]
	if !ok || at <= now {
		return 0
	}
	return at - now
}

// ReadyAt exposes the stored ready timestamp, if any.
func (l *Ledger) ReadyAt(id ID) (time.Duration, bool) {
	if l == nil {
		return 0, false
	}
	at, ok := l.readyAt[id]
	return at, ok
}

// Reset clears every cooldown and the lock.
func (l *Ledger) Reset() {
	if l == nil {
		return
	}
	l.readyAt = make(map[ID]time.Duration)
	l.lockedUntil = 0
}
