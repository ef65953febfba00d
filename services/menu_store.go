package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"matsal-partner-api/datasource"
	"matsal-partner-api/entity"
)

// MenuItemPatch carries a partial update; nil fields stay untouched.
type MenuItemPatch struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *int64             `json:"price"`
	Category       *int               `json:"category"`
	Available      *bool              `json:"available"`
	Image          *string            `json:"image"`
	Weight         *int               `json:"weight"`
	Nutrition      *entity.Nutrition  `json:"nutrition"`
	Allergens      *[]entity.Allergen `json:"allergens"`
	ModifierGroups *[]int             `json:"modifierGroups"`
}

type ModifierGroupPatch struct {
	Name      *string            `json:"name"`
	Required  *bool              `json:"required"`
	MaxSelect *int               `json:"maxSelect"`
	Modifiers *[]entity.Modifier `json:"modifiers"`
}

// MenuStore owns the menu items, categories and modifier groups. Ids are
// assigned max-plus-one per collection; item sort order is ranked within
// the item's category.
type MenuStore struct {
	source datasource.MenuSource
	log    *zap.Logger

	mu         sync.RWMutex
	items      []entity.MenuItem
	categories []entity.MenuCategory
	groups     []entity.ModifierGroup
	// 0 means no category selected
	selectedCategory int
	searchQuery      string
	loading          bool
}

func NewMenuStore(source datasource.MenuSource, log *zap.Logger) *MenuStore {
	return &MenuStore{source: source, log: log}
}

// Load replaces all three collections atomically; a populated store
// skips the round-trip unless force is set.
func (s *MenuStore) Load(ctx context.Context, force bool) error {
	s.mu.RLock()
	populated := len(s.items) > 0
	s.mu.RUnlock()
	if populated && !force {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	snap, err := s.source.LoadMenu(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = snap.Items
	s.categories = snap.Categories
	s.groups = snap.ModifierGroups
	s.mu.Unlock()

	s.log.Info("menu loaded",
		zap.Int("items", len(snap.Items)),
		zap.Int("categories", len(snap.Categories)),
		zap.Int("modifierGroups", len(snap.ModifierGroups)))
	return nil
}

func (s *MenuStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *MenuStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *MenuStore) SetSelectedCategory(id int) {
	s.mu.Lock()
	s.selectedCategory = id
	s.mu.Unlock()
}

func (s *MenuStore) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
}

// ----- Views -----

func (s *MenuStore) Items() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MenuStore) Item(id int) (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}

// FilteredItems narrows by category (0 = all) and case-insensitive name
// match, ascending by sort order.
func (s *MenuStore) FilteredItems(category int, query string) []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		if category != 0 && it.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// FilteredView applies the stored category selection and search query.
func (s *MenuStore) FilteredView() []entity.MenuItem {
	s.mu.RLock()
	category, query := s.selectedCategory, s.searchQuery
	s.mu.RUnlock()
	return s.FilteredItems(category, query)
}

func (s *MenuStore) UnavailableItems() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.MenuItem
	for _, it := range s.items {
		if !it.Available {
			out = append(out, it)
		}
	}
	return out
}

func (s *MenuStore) SortedCategories() []entity.MenuCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.MenuCategory, len(s.categories))
	copy(out, s.categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func (s *MenuStore) ModifierGroups() []entity.ModifierGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.ModifierGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

// ----- Item CRUD -----

// AddItem assigns the id and the per-category sort order, ignoring
// whatever the caller put in those fields. Category existence is not
// checked; an item may point at a category that does not exist.
func (s *MenuStore) AddItem(item entity.MenuItem) entity.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID, maxSort := 0, 0
	for _, it := range s.items {
		if it.ID > maxID {
			maxID = it.ID
		}
		if it.Category == item.Category && it.SortOrder > maxSort {
			maxSort = it.SortOrder
		}
	}
	item.ID = maxID + 1
	item.SortOrder = maxSort + 1
	if item.Allergens == nil {
		item.Allergens = []entity.Allergen{}
	}
	if item.ModifierGroups == nil {
		item.ModifierGroups = []int{}
	}
	s.items = append(s.items, item)

	s.log.Info("menu item added", zap.Int("id", item.ID), zap.String("name", item.Name))
	return item
}

// UpdateItem merges the patch into a matching item; false if not found.
func (s *MenuStore) UpdateItem(id int, patch MenuItemPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		it := &s.items[i]
		if it.ID != id {
			continue
		}
		if patch.Name != nil {
			it.Name = *patch.Name
		}
		if patch.Description != nil {
			it.Description = *patch.Description
		}
		if patch.Price != nil {
			it.Price = *patch.Price
		}
		if patch.Category != nil {
			it.Category = *patch.Category
		}
		if patch.Available != nil {
			it.Available = *patch.Available
		}
		if patch.Image != nil {
			it.Image = *patch.Image
		}
		if patch.Weight != nil {
			it.Weight = *patch.Weight
		}
		if patch.Nutrition != nil {
			it.Nutrition = patch.Nutrition
		}
		if patch.Allergens != nil {
			it.Allergens = *patch.Allergens
		}
		if patch.ModifierGroups != nil {
			it.ModifierGroups = *patch.ModifierGroups
		}
		return true
	}
	return false
}

func (s *MenuStore) DeleteItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MenuStore) ToggleAvailability(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Available = !s.items[i].Available
			return true
		}
	}
	return false
}

// BulkToggleAvailability sets the flag on every matching id; unknown ids
// are skipped. Returns how many items changed.
func (s *MenuStore) BulkToggleAvailability(ids []int, available bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	affected := 0
	for _, id := range ids {
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Available = available
				affected++
				break
			}
		}
	}
	return affected
}

// BulkDelete removes every item whose id is in ids.
func (s *MenuStore) BulkDelete(ids []int) int {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := 0
	for _, it := range s.items {
		if _, gone := set[it.ID]; gone {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return removed
}

// ----- Category CRUD -----

func (s *MenuStore) AddCategory(name string) entity.MenuCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID, maxSort := 0, 0
	for _, c := range s.categories {
		if c.ID > maxID {
			maxID = c.ID
		}
		if c.SortOrder > maxSort {
			maxSort = c.SortOrder
		}
	}
	cat := entity.MenuCategory{ID: maxID + 1, Name: name, SortOrder: maxSort + 1}
	s.categories = append(s.categories, cat)
	return cat
}

func (s *MenuStore) UpdateCategory(id int, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = name
			return true
		}
	}
	return false
}

// DeleteCategory removes the category and every item referencing it.
// Destructive compound operation; the caller confirms upstream.
func (s *MenuStore) DeleteCategory(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	kept := s.items[:0]
	removed := 0
	for _, it := range s.items {
		if it.Category == id {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept

	s.log.Info("category deleted", zap.Int("id", id), zap.Int("cascadedItems", removed))
	return true
}

// ReorderCategories re-ranks the whole collection from the positional
// order of ids. The caller must pass every current category exactly
// once; ids missing from the input are dropped, unknown ids ignored.
func (s *MenuStore) ReorderCategories(ids []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[int]entity.MenuCategory, len(s.categories))
	for _, c := range s.categories {
		byID[c.ID] = c
	}

	out := make([]entity.MenuCategory, 0, len(ids))
	for i, id := range ids {
		c, ok := byID[id]
		if !ok {
			continue
		}
		c.SortOrder = i + 1
		out = append(out, c)
	}
	s.categories = out
}

// ----- Modifier group CRUD -----

func (s *MenuStore) AddModifierGroup(group entity.ModifierGroup) entity.ModifierGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, g := range s.groups {
		if g.ID > maxID {
			maxID = g.ID
		}
	}
	group.ID = maxID + 1
	if group.Modifiers == nil {
		group.Modifiers = []entity.Modifier{}
	}
	s.groups = append(s.groups, group)
	return group
}

func (s *MenuStore) UpdateModifierGroup(id int, patch ModifierGroupPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groups {
		g := &s.groups[i]
		if g.ID != id {
			continue
		}
		if patch.Name != nil {
			g.Name = *patch.Name
		}
		if patch.Required != nil {
			g.Required = *patch.Required
		}
		if patch.MaxSelect != nil {
			g.MaxSelect = *patch.MaxSelect
		}
		if patch.Modifiers != nil {
			g.Modifiers = *patch.Modifiers
		}
		return true
	}
	return false
}

// DeleteModifierGroup removes the group and strips its id from every
// item's modifier group list.
func (s *MenuStore) DeleteModifierGroup(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, g := range s.groups {
		if g.ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	for i := range s.items {
		refs := s.items[i].ModifierGroups
		// Fresh slice: item copies handed out by the accessors still
		// alias the old backing array, so never compact it in place.
		kept := make([]int, 0, len(refs))
		for _, gid := range refs {
			if gid != id {
				kept = append(kept, gid)
			}
		}
		s.items[i].ModifierGroups = kept
	}
	return true
}
