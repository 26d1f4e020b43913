package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogersnm/tick/internal/model"
	"github.com/rogersnm/tick/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(storage.NewMem())
}

func TestAdd_TrimsText(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Add("  Buy milk  "))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Text)
	assert.False(t, items[0].Completed)
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestAdd_EmptyText(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Add(""))
	assert.False(t, s.Add("   \t "))
	assert.Equal(t, 0, s.Len())
}

func TestAdd_OverlongText(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Add(strings.Repeat("a", model.MaxTextLen+1)))
	assert.Equal(t, 0, s.Len())
}

func TestAdd_AssignsDistinctIncreasingIDs(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	items := s.Items()
	require.Len(t, items, 3)
	assert.Less(t, items[0].ID, items[1].ID)
	assert.Less(t, items[1].ID, items[2].ID)
}

func TestToggle_IsItsOwnInverse(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	id := s.Items()[0].ID

	require.True(t, s.Toggle(id))
	it, _ := s.Get(id)
	assert.True(t, it.Completed)

	require.True(t, s.Toggle(id))
	it, _ = s.Get(id)
	assert.False(t, it.Completed)
}

func TestToggle_UnknownID(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	assert.False(t, s.Toggle(999))
	assert.Equal(t, 1, s.Len())
}

func TestEdit_ReplacesTextOnly(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	before := s.Items()[0]
	s.Toggle(before.ID)

	require.True(t, s.Edit(before.ID, "  b  "))
	after, _ := s.Get(before.ID)
	assert.Equal(t, "b", after.Text)
	assert.Equal(t, before.ID, after.ID)
	assert.True(t, after.Completed)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestEdit_InvalidText(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	id := s.Items()[0].ID

	assert.False(t, s.Edit(id, "   "))
	assert.False(t, s.Edit(id, strings.Repeat("x", model.MaxTextLen+1)))
	it, _ := s.Get(id)
	assert.Equal(t, "a", it.Text)
}

func TestEdit_UnknownID(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	assert.False(t, s.Edit(999, "b"))
	assert.Equal(t, "a", s.Items()[0].Text)
}

func TestDelete_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.Add("c")

	require.True(t, s.Delete(s.Items()[1].ID))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Text)
	assert.Equal(t, "c", items[1].Text)
}

func TestDelete_UnknownID(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	assert.False(t, s.Delete(999))
	assert.Equal(t, 1, s.Len())
}

func TestCounts_AlwaysSumToLength(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.Add("c")
	s.Toggle(s.Items()[0].ID)
	s.Delete(s.Items()[2].ID)

	assert.Equal(t, s.Len(), s.ActiveCount()+s.CompletedCount())
}

func TestClearCompleted(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.Toggle(s.Items()[0].ID)

	removed := s.ClearCompleted()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, s.CompletedCount())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "b", s.Items()[0].Text)
}

func TestClearCompleted_NothingToRemove(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	assert.Equal(t, 0, s.ClearCompleted())
	assert.Equal(t, 1, s.Len())
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.ClearAll()
	assert.Equal(t, 0, s.Len())
}

func TestSetFilter(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, model.FilterAll, s.Filter())

	require.True(t, s.SetFilter(model.FilterActive))
	assert.Equal(t, model.FilterActive, s.Filter())

	assert.False(t, s.SetFilter("done"))
	assert.Equal(t, model.FilterActive, s.Filter())
}

func TestFiltered_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	s.Add("c")
	s.Toggle(s.Items()[1].ID)

	s.SetFilter(model.FilterActive)
	active := s.Filtered()
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Text)
	assert.Equal(t, "c", active[1].Text)

	s.SetFilter(model.FilterCompleted)
	done := s.Filtered()
	require.Len(t, done, 1)
	assert.Equal(t, "b", done[0].Text)
}

func TestIDs_NeverReusedAfterDelete(t *testing.T) {
	s := newTestStore(t)
	s.Add("a")
	s.Add("b")
	deleted := s.Items()[1].ID
	s.Delete(deleted)

	s.Add("c")
	added := s.Items()[1]
	assert.Greater(t, added.ID, deleted)
}

func TestIDs_NeverReusedAcrossReload(t *testing.T) {
	gw := storage.NewMem()
	s := New(gw)
	s.Add("a")
	s.Add("b")
	highest := s.Items()[1].ID
	s.Delete(highest)

	// A fresh instance over the same gateway must not hand out the
	// deleted id again.
	s2 := New(gw)
	require.True(t, s2.Add("c"))
	assert.Greater(t, s2.Items()[1].ID, highest)
}

func TestRoundTrip_ReproducesState(t *testing.T) {
	gw := storage.NewMem()
	s := New(gw)
	s.Add("Buy milk")
	s.Add("Walk dog")
	s.Toggle(s.Items()[0].ID)

	s2 := New(gw)
	require.Equal(t, s.Items(), s2.Items())
	assert.Equal(t, 1, s2.ActiveCount())
	assert.Equal(t, 1, s2.CompletedCount())
}

func TestNew_CorruptCounterFallsBackToMaxID(t *testing.T) {
	gw := storage.NewMem()
	s := New(gw)
	s.Add("a")
	s.Add("b")
	highest := s.Items()[1].ID

	gw.Corrupt(storage.KeyNextID)

	s2 := New(gw)
	require.True(t, s2.Add("c"))
	assert.Equal(t, highest+1, s2.Items()[2].ID)
}

func TestNew_StaleCounterIsReconciled(t *testing.T) {
	gw := storage.NewMem()
	s := New(gw)
	s.Add("a")
	highest := s.Items()[0].ID

	// A hand-edited counter lower than existing ids must not win.
	gw.Save(storage.KeyNextID, int64(1))

	s2 := New(gw)
	require.True(t, s2.Add("b"))
	assert.Greater(t, s2.Items()[1].ID, highest)
}

func TestNew_EmptyGateway(t *testing.T) {
	s := New(storage.NewMem())
	assert.Equal(t, 0, s.Len())
	require.True(t, s.Add("first"))
	assert.Equal(t, int64(1), s.Items()[0].ID)
}

func TestScenario_MilkAndDog(t *testing.T) {
	s := newTestStore(t)
	s.Add("Buy milk")
	s.Add("Walk dog")

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Buy milk", items[0].Text)
	assert.Equal(t, "Walk dog", items[1].Text)
	assert.Equal(t, 2, s.ActiveCount())
	assert.Equal(t, 0, s.CompletedCount())

	s.Toggle(items[0].ID)
	assert.Equal(t, 1, s.ActiveCount())
	assert.Equal(t, 1, s.CompletedCount())

	s.ClearCompleted()
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Walk dog", s.Items()[0].Text)
}
