package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"matsal-partner-api/datasource"
	"matsal-partner-api/entity"
)

type stubMenuSource struct {
	snap datasource.MenuSnapshot
}

func (s *stubMenuSource) LoadMenu(_ context.Context) (*datasource.MenuSnapshot, error) {
	snap := s.snap
	return &snap, nil
}

func newTestMenuStore(t *testing.T) *MenuStore {
	t.Helper()
	store := NewMenuStore(&stubMenuSource{}, zap.NewNop())
	require.NoError(t, store.Load(context.Background(), false))
	return store
}

func TestAddItemAssignsPerCategorySortOrder(t *testing.T) {
	store := newTestMenuStore(t)
	pizza := store.AddCategory("Pizza")
	soups := store.AddCategory("Soups")

	first := store.AddItem(entity.MenuItem{Name: "Margherita", Category: pizza.ID, Price: 450})
	assert.Equal(t, 1, first.SortOrder)
	assert.Equal(t, 1, first.ID)

	second := store.AddItem(entity.MenuItem{Name: "Pepperoni", Category: pizza.ID, Price: 520})
	assert.Equal(t, 2, second.SortOrder)
	assert.Equal(t, 2, second.ID)

	// a different empty category ranks independently
	other := store.AddItem(entity.MenuItem{Name: "Kharcho", Category: soups.ID, Price: 380})
	assert.Equal(t, 1, other.SortOrder)
	assert.Equal(t, 3, other.ID)
}

func TestAddItemIDIsMaxPlusOne(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Drinks")

	a := store.AddItem(entity.MenuItem{Name: "Cola", Category: cat.ID})
	b := store.AddItem(entity.MenuItem{Name: "Lemonade", Category: cat.ID})
	require.True(t, store.DeleteItem(a.ID))

	c := store.AddItem(entity.MenuItem{Name: "Tea", Category: cat.ID})
	assert.Equal(t, b.ID+1, c.ID)
}

func TestUpdateItemMergesPartial(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Pizza")
	item := store.AddItem(entity.MenuItem{Name: "Margherita", Category: cat.ID, Price: 450, Available: true})

	newPrice := int64(480)
	require.True(t, store.UpdateItem(item.ID, MenuItemPatch{Price: &newPrice}))

	got, ok := store.Item(item.ID)
	require.True(t, ok)
	assert.Equal(t, int64(480), got.Price)
	assert.Equal(t, "Margherita", got.Name) // untouched
	assert.True(t, got.Available)

	// unknown id: no-op
	assert.False(t, store.UpdateItem(999, MenuItemPatch{Price: &newPrice}))
}

func TestToggleAvailability(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Pizza")
	item := store.AddItem(entity.MenuItem{Name: "Margherita", Category: cat.ID, Available: true})

	require.True(t, store.ToggleAvailability(item.ID))
	got, _ := store.Item(item.ID)
	assert.False(t, got.Available)

	require.True(t, store.ToggleAvailability(item.ID))
	got, _ = store.Item(item.ID)
	assert.True(t, got.Available)

	assert.False(t, store.ToggleAvailability(999))
}

func TestBulkToggleSkipsMissingIDs(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Pizza")
	a := store.AddItem(entity.MenuItem{Name: "A", Category: cat.ID, Available: true})
	b := store.AddItem(entity.MenuItem{Name: "B", Category: cat.ID, Available: true})

	affected := store.BulkToggleAvailability([]int{a.ID, b.ID, 999}, false)
	assert.Equal(t, 2, affected)

	gotA, _ := store.Item(a.ID)
	gotB, _ := store.Item(b.ID)
	assert.False(t, gotA.Available)
	assert.False(t, gotB.Available)
}

func TestBulkDelete(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Pizza")
	a := store.AddItem(entity.MenuItem{Name: "A", Category: cat.ID})
	store.AddItem(entity.MenuItem{Name: "B", Category: cat.ID})
	c := store.AddItem(entity.MenuItem{Name: "C", Category: cat.ID})

	removed := store.BulkDelete([]int{a.ID, c.ID, 999})
	assert.Equal(t, 2, removed)
	assert.Len(t, store.Items(), 1)
}

func TestDeleteCategoryCascadesToItems(t *testing.T) {
	store := newTestMenuStore(t)
	pizza := store.AddCategory("Pizza")
	soups := store.AddCategory("Soups")
	store.AddItem(entity.MenuItem{Name: "Margherita", Category: pizza.ID})
	store.AddItem(entity.MenuItem{Name: "Pepperoni", Category: pizza.ID})
	keep := store.AddItem(entity.MenuItem{Name: "Kharcho", Category: soups.ID})

	require.True(t, store.DeleteCategory(pizza.ID))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)
	assert.Len(t, store.SortedCategories(), 1)

	assert.False(t, store.DeleteCategory(999))
}

func TestDeleteModifierGroupStripsReferences(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Pizza")
	sauces := store.AddModifierGroup(entity.ModifierGroup{Name: "Sauces", MaxSelect: 3})
	toppings := store.AddModifierGroup(entity.ModifierGroup{Name: "Toppings", MaxSelect: 5})

	item := store.AddItem(entity.MenuItem{
		Name: "Margherita", Category: cat.ID,
		ModifierGroups: []int{sauces.ID, toppings.ID},
	})

	require.True(t, store.DeleteModifierGroup(sauces.ID))

	got, _ := store.Item(item.ID)
	assert.Equal(t, []int{toppings.ID}, got.ModifierGroups)
	assert.Len(t, store.ModifierGroups(), 1)
}

// Item copies handed out before a group delete must stay readable while
// the cascade rewrites references; run with -race.
func TestDeleteModifierGroupDoesNotMutateHandedOutCopies(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Pizza")
	sauces := store.AddModifierGroup(entity.ModifierGroup{Name: "Sauces", MaxSelect: 3})
	toppings := store.AddModifierGroup(entity.ModifierGroup{Name: "Toppings", MaxSelect: 5})

	item := store.AddItem(entity.MenuItem{
		Name: "Margherita", Category: cat.ID,
		ModifierGroups: []int{sauces.ID, toppings.ID},
	})

	before, ok := store.Item(item.ID)
	require.True(t, ok)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range [100]struct{}{} {
			for _, gid := range before.ModifierGroups {
				_ = gid
			}
		}
	}()
	require.True(t, store.DeleteModifierGroup(sauces.ID))
	<-done

	assert.Equal(t, []int{sauces.ID, toppings.ID}, before.ModifierGroups)
	after, _ := store.Item(item.ID)
	assert.Equal(t, []int{toppings.ID}, after.ModifierGroups)
}

func TestReorderCategories(t *testing.T) {
	store := newTestMenuStore(t)
	a := store.AddCategory("A")
	b := store.AddCategory("B")
	c := store.AddCategory("C")

	store.ReorderCategories([]int{c.ID, a.ID, b.ID})

	got := store.SortedCategories()
	require.Len(t, got, 3)
	assert.Equal(t, []int{c.ID, a.ID, b.ID}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, 1, got[0].SortOrder)
	assert.Equal(t, 2, got[1].SortOrder)
	assert.Equal(t, 3, got[2].SortOrder)
}

func TestFilteredItems(t *testing.T) {
	store := newTestMenuStore(t)
	pizza := store.AddCategory("Pizza")
	soups := store.AddCategory("Soups")
	store.AddItem(entity.MenuItem{Name: "Margherita", Category: pizza.ID})
	store.AddItem(entity.MenuItem{Name: "Pepperoni", Category: pizza.ID})
	store.AddItem(entity.MenuItem{Name: "Kharcho", Category: soups.ID})

	byCat := store.FilteredItems(pizza.ID, "")
	assert.Len(t, byCat, 2)
	// sorted ascending by per-category rank
	assert.Equal(t, 1, byCat[0].SortOrder)
	assert.Equal(t, 2, byCat[1].SortOrder)

	bySearch := store.FilteredItems(0, "pepp")
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Pepperoni", bySearch[0].Name)

	both := store.FilteredItems(soups.ID, "margherita")
	assert.Empty(t, both)
}

func TestUnavailableItems(t *testing.T) {
	store := newTestMenuStore(t)
	cat := store.AddCategory("Pizza")
	store.AddItem(entity.MenuItem{Name: "A", Category: cat.ID, Available: true})
	off := store.AddItem(entity.MenuItem{Name: "B", Category: cat.ID, Available: false})

	got := store.UnavailableItems()
	require.Len(t, got, 1)
	assert.Equal(t, off.ID, got[0].ID)
}

func TestFilteredViewUsesStoredSelection(t *testing.T) {
	store := newTestMenuStore(t)
	pizza := store.AddCategory("Pizza")
	soups := store.AddCategory("Soups")
	store.AddItem(entity.MenuItem{Name: "Margherita", Category: pizza.ID})
	store.AddItem(entity.MenuItem{Name: "Kharcho", Category: soups.ID})

	store.SetSelectedCategory(soups.ID)
	store.SetSearchQuery("khar")

	got := store.FilteredView()
	require.Len(t, got, 1)
	assert.Equal(t, "Kharcho", got[0].Name)
	assert.False(t, store.Loading())
}

func TestUpdateModifierGroup(t *testing.T) {
	store := newTestMenuStore(t)
	g := store.AddModifierGroup(entity.ModifierGroup{Name: "Sauces", Required: false, MaxSelect: 3})

	required := true
	maxSel := 1
	require.True(t, store.UpdateModifierGroup(g.ID, ModifierGroupPatch{Required: &required, MaxSelect: &maxSel}))

	groups := store.ModifierGroups()
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Required)
	assert.Equal(t, 1, groups[0].MaxSelect)
	assert.Equal(t, "Sauces", groups[0].Name)

	assert.False(t, store.UpdateModifierGroup(999, ModifierGroupPatch{}))
}
