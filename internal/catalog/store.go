// Package catalog implements the persistent category and item-link
// store backing classification. Categories and link overrides live in
// two JSON documents that are rewritten in full on every mutation.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/qwicdev/backorder-analyzer/internal/common"
	"github.com/qwicdev/backorder-analyzer/internal/model"
)

const (
	categoriesFile = "categories.json"
	itemLinksFile  = "item_links.json"

	// Sentinels returned for unregistered category IDs.
	unknownText  = "Onbekend"
	unknownColor = "FFFFFF"
)

// Store holds category definitions and per-item link overrides.
// Mutations persist synchronously before returning.
type Store struct {
	categories      map[int]*model.Category
	links           map[string]map[string]string
	dir             string
	defaultCategory int
	mu              sync.RWMutex
}

// Open loads the store from dir, creating the directory if needed.
// Missing or unreadable documents fall back to the built-in defaults;
// that is a deliberate soft-failure and is logged, not returned.
// defaultCategory is the ID CategoryFor returns when no member list
// matches; model.CategoryNone disables the fallback.
func Open(dir string, defaultCategory int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &Store{
		dir:             dir,
		defaultCategory: defaultCategory,
	}
	s.categories = loadCategories(filepath.Join(dir, categoriesFile))
	s.links = loadLinks(filepath.Join(dir, itemLinksFile))
	s.warnDuplicateMemberships()

	return s, nil
}

// loadCategories reads the category document, or returns the built-in
// defaults when the file is absent or corrupt.
func loadCategories(path string) map[int]*model.Category {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("category store unreadable, using built-in defaults", "path", path, "error", err)
		} else {
			slog.Warn("category store missing, using built-in defaults", "path", path)
		}
		return defaultCategories()
	}

	var doc map[string]*model.Category
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("category store corrupt, using built-in defaults", "path", path, "error", err)
		return defaultCategories()
	}

	categories := make(map[int]*model.Category, len(doc))
	for key, cat := range doc {
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			slog.Warn("skipping category with invalid ID", "key", key)
			continue
		}
		cat.ID = id
		categories[id] = cat
	}
	if len(categories) == 0 {
		slog.Warn("category store empty, using built-in defaults", "path", path)
		return defaultCategories()
	}
	return categories
}

// loadLinks reads the item-link document, or returns the built-in
// defaults when the file is absent or corrupt.
func loadLinks(path string) map[string]map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("item link store unreadable, using built-in defaults", "path", path, "error", err)
		}
		return defaultItemLinks()
	}

	var links map[string]map[string]string
	if err := json.Unmarshal(data, &links); err != nil {
		slog.Warn("item link store corrupt, using built-in defaults", "path", path, "error", err)
		return defaultItemLinks()
	}
	return links
}

// warnDuplicateMemberships flags items registered in more than one
// member list. Resolution picks the lowest category ID, but duplicates
// usually mean a stale edit.
func (s *Store) warnDuplicateMemberships() {
	seen := make(map[string]int)
	for _, id := range s.sortedIDs() {
		for _, item := range s.categories[id].Items {
			if first, ok := seen[item]; ok {
				slog.Warn("item registered in multiple categories, lowest ID wins",
					"item", item, "category", first, "also_in", id)
				continue
			}
			seen[item] = id
		}
	}
}

// sortedIDs returns category IDs in ascending order. Callers must hold
// at least a read lock.
func (s *Store) sortedIDs() []int {
	ids := make([]int, 0, len(s.categories))
	for id := range s.categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Categories returns all categories ordered by ascending ID.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.categories))
	for _, id := range s.sortedIDs() {
		cat := *s.categories[id]
		cat.Items = append([]string(nil), cat.Items...)
		out = append(out, cat)
	}
	return out
}

// CategoryFor resolves the category for an item by membership lookup.
// Iteration is in ascending-ID order so an item registered in more
// than one category resolves to the lowest ID. Returns the configured
// default when nothing matches.
func (s *Store) CategoryFor(itemNo string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.sortedIDs() {
		if s.categories[id].HasItem(itemNo) {
			return id
		}
	}
	return s.defaultCategory
}

// NameOf returns the display name for a category, or a sentinel for
// unknown IDs.
func (s *Store) NameOf(categoryID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cat, ok := s.categories[categoryID]; ok {
		return cat.Name
	}
	return unknownText
}

// DescriptionOf returns the description for a category, or a sentinel
// for unknown IDs.
func (s *Store) DescriptionOf(categoryID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cat, ok := s.categories[categoryID]; ok {
		return cat.Description
	}
	return unknownText
}

// ActionOf returns the recommended action text for a category, or a
// sentinel for unknown IDs.
func (s *Store) ActionOf(categoryID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cat, ok := s.categories[categoryID]; ok {
		return cat.Action
	}
	return unknownText
}

// ColorOf returns the display color for a category, or white for
// unknown IDs.
func (s *Store) ColorOf(categoryID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cat, ok := s.categories[categoryID]; ok {
		return cat.Color
	}
	return unknownColor
}

// ItemsIn returns the member list of a category, or nil for unknown
// IDs.
func (s *Store) ItemsIn(categoryID int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cat, ok := s.categories[categoryID]; ok {
		return append([]string(nil), cat.Items...)
	}
	return nil
}

// AddItem appends itemNo to the category's member list if absent.
// Returns false when the item was already a member or the category
// does not exist. Persists before returning on success.
func (s *Store) AddItem(itemNo string, categoryID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, ok := s.categories[categoryID]
	if !ok {
		return false, fmt.Errorf("add item %q: %w: %d", itemNo, common.ErrUnknownCategory, categoryID)
	}
	if cat.HasItem(itemNo) {
		return false, nil
	}

	cat.Items = append(cat.Items, itemNo)
	if err := s.saveCategories(); err != nil {
		return false, err
	}
	slog.Debug("item added to category", "item", itemNo, "category", categoryID)
	return true, nil
}

// RemoveItem removes itemNo from the category's member list. Returns
// false when the item was not a member or the category does not exist.
// Persists before returning on success.
func (s *Store) RemoveItem(itemNo string, categoryID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, ok := s.categories[categoryID]
	if !ok {
		return false, fmt.Errorf("remove item %q: %w: %d", itemNo, common.ErrUnknownCategory, categoryID)
	}

	for i, it := range cat.Items {
		if it == itemNo {
			cat.Items = append(cat.Items[:i], cat.Items[i+1:]...)
			if err := s.saveCategories(); err != nil {
				return false, err
			}
			slog.Debug("item removed from category", "item", itemNo, "category", categoryID)
			return true, nil
		}
	}
	return false, nil
}

// UpdateCategory overwrites the non-empty attribute arguments of an
// existing category and persists.
func (s *Store) UpdateCategory(categoryID int, name, description, action, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, ok := s.categories[categoryID]
	if !ok {
		return fmt.Errorf("update: %w: %d", common.ErrUnknownCategory, categoryID)
	}

	if name != "" {
		cat.Name = name
	}
	if description != "" {
		cat.Description = description
	}
	if action != "" {
		cat.Action = action
	}
	if color != "" {
		cat.Color = color
	}
	return s.saveCategories()
}

// LinkFor returns the stored URL for an item and link type, or the
// empty string when no override exists.
func (s *Store) LinkFor(itemNo, linkType string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if byType, ok := s.links[itemNo]; ok {
		return byType[linkType]
	}
	return ""
}

// SetLink upserts a link override for an item and persists.
func (s *Store) SetLink(itemNo, linkType, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.links[itemNo] == nil {
		s.links[itemNo] = make(map[string]string)
	}
	s.links[itemNo][linkType] = url
	return s.saveLinks()
}

// saveCategories rewrites the category document in full. Callers must
// hold the write lock.
func (s *Store) saveCategories() error {
	doc := make(map[string]*model.Category, len(s.categories))
	for id, cat := range s.categories {
		doc[strconv.Itoa(id)] = cat
	}
	return writeDocument(filepath.Join(s.dir, categoriesFile), doc)
}

// saveLinks rewrites the item-link document in full. Callers must hold
// the write lock.
func (s *Store) saveLinks() error {
	return writeDocument(filepath.Join(s.dir, itemLinksFile), s.links)
}

// writeDocument serializes v as indented JSON and replaces path
// atomically so a crashed write never leaves a half-applied edit.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
