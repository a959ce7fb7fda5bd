// Package watchlist keeps the per-user ordered lists of addresses that the
// wallet monitor matches block participants against.
//
// State lives in memory for the lifetime of the process. Mutations are
// serialized per user; readers obtain point-in-time copies through Snapshot.
package watchlist

import (
	"errors"
	"slices"
	"sync"

	"github.com/gabapcia/swapwatch/internal/pkg/types"
)

var (
	// ErrAlreadyExists is returned when an address is already present in the
	// user's watchlist. Comparison is case-insensitive.
	ErrAlreadyExists = errors.New("address already in watchlist")

	// ErrIndexOutOfRange is returned when a positional operation references
	// an index outside the user's watchlist.
	ErrIndexOutOfRange = errors.New("watchlist index out of range")
)

// UserID identifies the owner of a watchlist. With the Telegram sink it is
// the chat id notifications are sent to.
type UserID int64

// entry is a single user's watchlist. Its mutex serializes mutations for
// that user only.
type entry struct {
	mu        sync.Mutex
	addresses []types.Address
}

func (e *entry) indexOf(addr types.Address) int {
	return slices.Index(e.addresses, addr)
}

// Watchlist is the in-memory address watchlist shared by the management
// surface (writer) and the wallet monitor (reader).
//
// The zero value is not usable; create instances with New.
type Watchlist struct {
	mu      sync.RWMutex // protects entries, not their contents
	entries types.DefaultMap[UserID, *entry]
}

// New returns an empty Watchlist.
func New() *Watchlist {
	return &Watchlist{
		entries: types.NewDefaultMap[UserID](func() *entry { return new(entry) }),
	}
}

// entryFor returns the entry of user, creating it when create is true.
func (w *Watchlist) entryFor(user UserID, create bool) (*entry, bool) {
	if !create {
		w.mu.RLock()
		defer w.mu.RUnlock()

		return w.entries.Lookup(user)
	}

	w.mu.RLock()
	e, ok := w.entries.Lookup(user)
	w.mu.RUnlock()
	if ok {
		return e, true
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	return w.entries.Get(user), true
}

// Add appends address to the user's watchlist and returns its canonical form.
//
// It returns an error wrapping types.ErrInvalidAddress when address is not a
// syntactically valid account address, or ErrAlreadyExists when it is
// already watched by that user.
func (w *Watchlist) Add(user UserID, address string) (types.Address, error) {
	addr, err := types.ParseAddress(address)
	if err != nil {
		return "", err
	}

	e, _ := w.entryFor(user, true)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.indexOf(addr) >= 0 {
		return "", ErrAlreadyExists
	}

	e.addresses = append(e.addresses, addr)
	return addr, nil
}

// RemoveAt deletes the address stored at index and returns it.
func (w *Watchlist) RemoveAt(user UserID, index int) (types.Address, error) {
	e, ok := w.entryFor(user, false)
	if !ok {
		return "", ErrIndexOutOfRange
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.addresses) {
		return "", ErrIndexOutOfRange
	}

	removed := e.addresses[index]
	e.addresses = slices.Delete(e.addresses, index, index+1)
	return removed, nil
}

// ReplaceAt overwrites the address stored at index and returns the new
// canonical address.
//
// Replacing an address with itself (in any casing) succeeds. Replacing it
// with an address stored at another index returns ErrAlreadyExists.
func (w *Watchlist) ReplaceAt(user UserID, index int, address string) (types.Address, error) {
	addr, err := types.ParseAddress(address)
	if err != nil {
		return "", err
	}

	e, ok := w.entryFor(user, false)
	if !ok {
		return "", ErrIndexOutOfRange
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.addresses) {
		return "", ErrIndexOutOfRange
	}

	if i := e.indexOf(addr); i >= 0 && i != index {
		return "", ErrAlreadyExists
	}

	e.addresses[index] = addr
	return addr, nil
}

// Snapshot returns a copy of the user's addresses in insertion order. The
// copy is safe to use while the watchlist keeps changing.
func (w *Watchlist) Snapshot(user UserID) []types.Address {
	e, ok := w.entryFor(user, false)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.addresses)
}

// AllUsers returns every user that has ever had a watchlist, in ascending order.
func (w *Watchlist) AllUsers() []UserID {
	w.mu.RLock()
	defer w.mu.RUnlock()

	users := make([]UserID, 0, w.entries.Len())
	for user := range w.entries.All() {
		users = append(users, user)
	}

	slices.Sort(users)
	return users
}
