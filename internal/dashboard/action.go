// Package dashboard holds the per-row action menu used by the store dashboard:
// copy an id, jump to the edit form, or delete after confirmation.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Resource names a dashboard table. Name is shown to the user ("Product"),
// Path is the URL segment ("products").
type Resource struct {
	Name string
	Path string
}

var (
	Billboards = Resource{Name: "Billboard", Path: "billboards"}
	Categories = Resource{Name: "Category", Path: "categories"}
	Sizes      = Resource{Name: "Size", Path: "sizes"}
	Colors     = Resource{Name: "Color", Path: "colors"}
	Products   = Resource{Name: "Product", Path: "products"}
)

// Resources lists every table that has a row action menu.
func Resources() []Resource {
	return []Resource{Billboards, Categories, Sizes, Colors, Products}
}

func LookupResource(path string) (Resource, bool) {
	for _, r := range Resources() {
		if r.Path == path {
			return r, true
		}
	}
	return Resource{}, false
}

type Deleter interface {
	Delete(ctx context.Context, storeID string, resource Resource, id string) error
}

type Clipboard interface {
	WriteText(text string) error
}

type Notifier interface {
	Success(message string)
	Error(message string)
}

type Navigator interface {
	Refresh()
	Push(path string)
}

type State int

const (
	Idle State = iota
	ConfirmOpen
	Deleting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ConfirmOpen:
		return "confirm_open"
	case Deleting:
		return "deleting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var ErrNotConfirming = errors.New("delete is not awaiting confirmation")

const deleteFailedMessage = "Something went wrong"

// CellAction drives the action menu of one table row.
type CellAction struct {
	resource Resource
	storeID  string
	id       string

	deleter   Deleter
	clipboard Clipboard
	notifier  Notifier
	navigator Navigator

	mu    sync.Mutex
	state State
}

func NewCellAction(resource Resource, storeID, id string, deleter Deleter, clipboard Clipboard, notifier Notifier, navigator Navigator) *CellAction {
	return &CellAction{
		resource:  resource,
		storeID:   storeID,
		id:        id,
		deleter:   deleter,
		clipboard: clipboard,
		notifier:  notifier,
		navigator: navigator,
	}
}

func (a *CellAction) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Open reports whether the confirmation dialog is showing.
func (a *CellAction) Open() bool {
	return a.State() != Idle
}

// Loading reports whether a delete is in flight.
func (a *CellAction) Loading() bool {
	return a.State() == Deleting
}

// Copy puts the row id on the clipboard. Clipboard failures are swallowed.
func (a *CellAction) Copy() {
	_ = a.clipboard.WriteText(a.id)
	a.notifier.Success(a.resource.Name + " Id copied successfully")
}

func (a *CellAction) Edit() {
	a.navigator.Push(fmt.Sprintf("/%s/%s/%s", a.storeID, a.resource.Path, a.id))
}

// OpenDelete shows the confirmation dialog. It is a no-op while deleting.
func (a *CellAction) OpenDelete() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == Idle {
		a.state = ConfirmOpen
	}
}

// Cancel closes the dialog unless a delete is already in flight.
func (a *CellAction) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == ConfirmOpen {
		a.state = Idle
	}
}

// Confirm deletes the row. It only runs from the open dialog, so a second
// confirmation during an in-flight delete returns ErrNotConfirming.
func (a *CellAction) Confirm(ctx context.Context) error {
	a.mu.Lock()
	if a.state != ConfirmOpen {
		a.mu.Unlock()
		return ErrNotConfirming
	}
	a.state = Deleting
	a.mu.Unlock()

	err := a.deleter.Delete(ctx, a.storeID, a.resource, a.id)

	a.mu.Lock()
	a.state = Idle
	a.mu.Unlock()

	if err != nil {
		a.notifier.Error(deleteFailedMessage)
		return err
	}

	a.navigator.Refresh()
	a.navigator.Push(fmt.Sprintf("/%s/%s", a.storeID, a.resource.Path))
	a.notifier.Success(a.resource.Name + " deleted")
	return nil
}
