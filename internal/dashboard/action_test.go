package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeleter struct {
	calls   int
	err     error
	started chan struct{}
	release chan struct{}
}

func (d *fakeDeleter) Delete(ctx context.Context, storeID string, resource Resource, id string) error {
	d.calls++
	if d.started != nil {
		close(d.started)
		<-d.release
	}
	return d.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(text string) error {
	c.text = text
	return c.err
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *fakeNotifier) Error(message string)   { n.errors = append(n.errors, message) }

type fakeNavigator struct {
	refreshes int
	pushes    []string
}

func (n *fakeNavigator) Refresh()         { n.refreshes++ }
func (n *fakeNavigator) Push(path string) { n.pushes = append(n.pushes, path) }

type fixture struct {
	deleter   *fakeDeleter
	clipboard *fakeClipboard
	notifier  *fakeNotifier
	navigator *fakeNavigator
	action    *CellAction
}

func newFixture() *fixture {
	f := &fixture{
		deleter:   &fakeDeleter{},
		clipboard: &fakeClipboard{},
		notifier:  &fakeNotifier{},
		navigator: &fakeNavigator{},
	}
	f.action = NewCellAction(Products, "store_1", "prod_1", f.deleter, f.clipboard, f.notifier, f.navigator)
	return f
}

func TestCopy(t *testing.T) {
	f := newFixture()
	f.action.Copy()

	assert.Equal(t, "prod_1", f.clipboard.text)
	assert.Equal(t, []string{"Product Id copied successfully"}, f.notifier.successes)
	assert.Zero(t, f.deleter.calls)
	assert.Equal(t, Idle, f.action.State())
}

func TestCopy_ClipboardFailureIsSilent(t *testing.T) {
	f := newFixture()
	f.clipboard.err = errors.New("no clipboard")
	f.action.Copy()

	assert.Empty(t, f.notifier.errors)
	assert.Equal(t, []string{"Product Id copied successfully"}, f.notifier.successes)
}

func TestEdit(t *testing.T) {
	f := newFixture()
	f.action.Edit()
	assert.Equal(t, []string{"/store_1/products/prod_1"}, f.navigator.pushes)
}

func TestDelete_Success(t *testing.T) {
	f := newFixture()
	f.action.OpenDelete()
	require.True(t, f.action.Open())

	require.NoError(t, f.action.Confirm(context.Background()))

	assert.Equal(t, 1, f.deleter.calls)
	assert.False(t, f.action.Open())
	assert.False(t, f.action.Loading())
	assert.Equal(t, 1, f.navigator.refreshes)
	assert.Equal(t, []string{"/store_1/products"}, f.navigator.pushes)
	assert.Equal(t, []string{"Product deleted"}, f.notifier.successes)
}

func TestDelete_Failure(t *testing.T) {
	f := newFixture()
	f.deleter.err = errors.New("409")
	f.action.OpenDelete()

	err := f.action.Confirm(context.Background())
	assert.Error(t, err)

	assert.False(t, f.action.Open())
	assert.False(t, f.action.Loading())
	assert.Zero(t, f.navigator.refreshes)
	assert.Empty(t, f.navigator.pushes)
	assert.Equal(t, []string{"Something went wrong"}, f.notifier.errors)
	assert.Empty(t, f.notifier.successes)
}

func TestConfirm_RequiresOpenDialog(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.action.Confirm(context.Background()), ErrNotConfirming)
	assert.Zero(t, f.deleter.calls)

	f.action.OpenDelete()
	f.action.Cancel()
	assert.Equal(t, Idle, f.action.State())
	assert.ErrorIs(t, f.action.Confirm(context.Background()), ErrNotConfirming)
}

func TestConfirm_RejectedWhileDeleting(t *testing.T) {
	f := newFixture()
	f.deleter.started = make(chan struct{})
	f.deleter.release = make(chan struct{})
	f.action.OpenDelete()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = f.action.Confirm(context.Background())
	}()

	<-f.deleter.started
	assert.True(t, f.action.Loading())
	assert.True(t, f.action.Open())
	assert.ErrorIs(t, f.action.Confirm(context.Background()), ErrNotConfirming)

	// Cancel and reopen are ignored mid-flight.
	f.action.Cancel()
	f.action.OpenDelete()
	assert.Equal(t, Deleting, f.action.State())

	close(f.deleter.release)
	wg.Wait()

	assert.Equal(t, 1, f.deleter.calls)
	assert.Equal(t, Idle, f.action.State())
}

func TestLookupResource(t *testing.T) {
	r, ok := LookupResource("sizes")
	require.True(t, ok)
	assert.Equal(t, "Size", r.Name)

	_, ok = LookupResource("stores")
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "confirm_open", ConfirmOpen.String())
	assert.Equal(t, "state(9)", State(9).String())
}
