package gamemaster

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"manhunt/game"
)

var (
	ErrNilObserver       = errors.New("nil observer")
	ErrDuplicateObserver = errors.New("observer already registered")
	ErrUnknownObserver   = errors.New("observer not registered")
	ErrNilHandle         = errors.New("nil observer handle")
)

// Handle identifies one registration. The zero Handle is never issued.
type Handle struct {
	id uuid.UUID
}

func (h Handle) IsZero() bool {
	return h.id == uuid.Nil
}

func (h Handle) String() string {
	return h.id.String()
}

type registration struct {
	handle   Handle
	observer Observer
}

// Register adds o to the observers notified by ChooseMove.
func (gm *GameMaster) Register(o Observer) (Handle, error) {
	if isNil(o) {
		return Handle{}, ErrNilObserver
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for _, r := range gm.observers {
		if sameObserver(r.observer, o) {
			return Handle{}, fmt.Errorf("%w: %s", ErrDuplicateObserver, r.handle)
		}
	}

	h := Handle{id: uuid.New()}
	gm.observers = append(gm.observers, registration{handle: h, observer: o})
	return h, nil
}

// Unregister removes the observer registered under h.
func (gm *GameMaster) Unregister(h Handle) error {
	if h.IsZero() {
		return ErrNilHandle
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for i, r := range gm.observers {
		if r.handle == h {
			gm.observers = append(gm.observers[:i:i], gm.observers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownObserver, h)
}

// Observers returns the registered observers in registration order.
func (gm *GameMaster) Observers() []Observer {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	observers := make([]Observer, len(gm.observers))
	for i, r := range gm.observers {
		observers[i] = r.observer
	}
	return observers
}

// sameObserver compares observers only when both values are comparable,
// so observers holding funcs, maps or slices are never duplicates.
func sameObserver(a, b Observer) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

func isNil(o Observer) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

type logObserver struct{}

// LogObserver logs every move and the final outcome with the global logger.
func LogObserver() Observer {
	return logObserver{}
}

func (logObserver) OnModelChanged(board game.Board, event Event) {
	entry := log.Debug()
	if event == GameOver {
		entry = log.Info()
	}
	entry.
		Str("event", event.String()).
		Int("log", len(board.TravelLog())).
		Interface("remaining", board.Remaining()).
		Interface("winner", board.Winner()).
		Int("legal_moves", len(board.LegalMoves())).
		Msg("game updated")
}
