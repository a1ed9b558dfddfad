package model

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"yalv/internal/virsh"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBackend struct {
	mock.Mock
}

func (b *mockBackend) List(ctx context.Context, includeInactive bool) (virsh.ListResult, error) {
	args := b.Called(includeInactive)
	return args.Get(0).(virsh.ListResult), args.Error(1)
}

func (b *mockBackend) Start(ctx context.Context, name string) error {
	return b.Called(name).Error(0)
}

func (b *mockBackend) Shutdown(ctx context.Context, name string) error {
	return b.Called(name).Error(0)
}

func (b *mockBackend) ConsoleCommand(name string) *exec.Cmd { return exec.Command("true") }
func (b *mockBackend) SSHCommand(target string) *exec.Cmd  { return exec.Command("true") }

func (b *mockBackend) ResolveAddress(ctx context.Context, name string) (string, error) {
	args := b.Called(name)
	return args.String(0), args.Error(1)
}

func rec(id, name string, state virsh.VMState) virsh.VMRecord {
	return virsh.VMRecord{ID: id, Name: name, State: state}
}

func listOf(records ...virsh.VMRecord) virsh.ListResult {
	return virsh.ListResult{Records: records}
}

func TestVisibleRespectsFilter(t *testing.T) {
	m := New(nil, FilterAll, false)
	m.ApplyList(FilterAll, listOf(
		rec("1", "web", virsh.StateRunning),
		rec("-", "db", virsh.StateShutOff),
		rec("3", "cache", virsh.VMState("paused")),
	))
	assert.Len(t, m.Visible(), 3)

	m.ApplyList(FilterRunningOnly, listOf(m.Records...))
	visible := m.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "web", visible[0].Name)
}

func TestMoveSelectionClamps(t *testing.T) {
	m := New(nil, FilterAll, false)
	m.ApplyList(FilterAll, listOf(
		rec("1", "a", virsh.StateRunning),
		rec("2", "b", virsh.StateRunning),
	))

	m.MoveSelection(-1)
	assert.Equal(t, 0, m.Cursor)
	m.MoveSelection(1)
	m.MoveSelection(1)
	assert.Equal(t, 1, m.Cursor)

	empty := New(nil, FilterAll, false)
	empty.MoveSelection(1)
	assert.Equal(t, 0, empty.Cursor)
	_, ok := empty.Selected()
	assert.False(t, ok)
}

func TestApplyListPreservesSelectionByName(t *testing.T) {
	m := New(nil, FilterAll, false)
	m.ApplyList(FilterAll, listOf(
		rec("1", "a", virsh.StateRunning),
		rec("2", "b", virsh.StateRunning),
		rec("3", "c", virsh.StateRunning),
	))
	m.MoveSelection(2)

	// "c" moves to the front.
	m.ApplyList(FilterAll, listOf(
		rec("3", "c", virsh.StateRunning),
		rec("1", "a", virsh.StateRunning),
	))
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "c", sel.Name)
	assert.Equal(t, 0, m.Cursor)

	// "a" disappears, cursor resets to the top.
	m.MoveSelection(1)
	m.ApplyList(FilterAll, listOf(
		rec("4", "d", virsh.StateRunning),
		rec("3", "c", virsh.StateRunning),
	))
	assert.Equal(t, 0, m.Cursor)
}

func TestApplyListCursorAlwaysValid(t *testing.T) {
	m := New(nil, FilterAll, false)
	m.ApplyList(FilterAll, listOf(
		rec("1", "a", virsh.StateRunning),
		rec("-", "b", virsh.StateShutOff),
	))
	m.MoveSelection(1)

	m.ApplyList(FilterRunningOnly, listOf(m.Records...))
	assert.Equal(t, 0, m.Cursor)
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.Name)

	m.ApplyList(FilterRunningOnly, listOf())
	assert.Equal(t, 0, m.Cursor)
	assert.Empty(t, m.Visible())
}

func TestApplyListWithoutPreviousSelection(t *testing.T) {
	m := New(nil, FilterRunningOnly, false)
	require.Empty(t, m.Visible())

	m.ApplyList(FilterAll, listOf(
		rec("-", "a", virsh.StateShutOff),
		rec("2", "b", virsh.StateRunning),
	))
	assert.Equal(t, FilterAll, m.Filter)
	assert.Equal(t, 0, m.Cursor)
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.Name)
}

func TestApplyListIsIdempotent(t *testing.T) {
	res := virsh.ListResult{
		Records: []virsh.VMRecord{rec("1", "a", virsh.StateRunning), rec("2", "b", virsh.StateRunning)},
		Skipped: 1,
	}
	m := New(nil, FilterAll, false)
	m.ApplyList(FilterAll, res)
	m.MoveSelection(1)

	m.ApplyList(FilterAll, res)
	records, cursor := m.Records, m.Cursor
	m.ApplyList(FilterAll, res)

	assert.Equal(t, records, m.Records)
	assert.Equal(t, cursor, m.Cursor)
	assert.Equal(t, 1, m.Skipped)
}

func TestRefresh(t *testing.T) {
	backend := &mockBackend{}
	backend.On("List", true).Return(listOf(
		rec("1", "a", virsh.StateRunning),
		rec("-", "b", virsh.StateShutOff),
	), nil).Once()
	backend.On("List", false).Return(virsh.ListResult{}, virsh.ErrBackendUnavailable).Once()

	m := New(backend, FilterAll, false)
	require.NoError(t, m.Refresh(context.Background(), FilterAll))
	m.MoveSelection(1)

	err := m.Refresh(context.Background(), FilterRunningOnly)
	assert.True(t, errors.Is(err, virsh.ErrBackendUnavailable))
	assert.Equal(t, FilterAll, m.Filter)
	assert.Len(t, m.Records, 2)
	assert.Equal(t, 1, m.Cursor)

	backend.AssertExpectations(t)
}

func TestViewFilter(t *testing.T) {
	assert.Equal(t, FilterAll, FilterFor(true))
	assert.Equal(t, FilterRunningOnly, FilterFor(false))
	assert.Equal(t, FilterAll, FilterRunningOnly.Toggle())
	assert.Equal(t, FilterRunningOnly, FilterAll.Toggle())
	assert.True(t, FilterAll.IncludeInactive())
	assert.False(t, FilterRunningOnly.IncludeInactive())
}
