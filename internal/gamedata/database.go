package gamedata

import "sort"

// Database is the in-memory item template table together with the
// locale strings used to resolve display names.
type Database struct {
	items  map[string]*TemplateItem
	locale map[string]string
}

// NewDatabase builds a Database from items keyed by id. locale may be nil.
func NewDatabase(items map[string]*TemplateItem, locale map[string]string) *Database {
	if items == nil {
		items = make(map[string]*TemplateItem)
	}
	return &Database{items: items, locale: locale}
}

// Item returns the template with the given id.
func (db *Database) Item(id string) (*TemplateItem, bool) {
	it, ok := db.items[id]
	return it, ok
}

// Items returns every template id in ascending order.
func (db *Database) Items() []string {
	ids := make([]string, 0, len(db.items))
	for id := range db.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of templates.
func (db *Database) Len() int {
	return len(db.items)
}

// Templates exposes the underlying table. Mutating the returned
// templates mutates the database.
func (db *Database) Templates() map[string]*TemplateItem {
	return db.items
}

// IsOfBaseClass reports whether baseClass appears in the parent chain of
// the template id. The template itself is not part of its own chain, and
// only templates of type Item have a base class; Node entries never match.
func (db *Database) IsOfBaseClass(id, baseClass string) bool {
	it, ok := db.items[id]
	if !ok || it.Type != TypeItem {
		return false
	}

	seen := map[string]bool{id: true}
	for parent := it.Parent; parent != ""; {
		if parent == baseClass {
			return true
		}
		if seen[parent] {
			return false
		}
		seen[parent] = true

		next, ok := db.items[parent]
		if !ok {
			return false
		}
		parent = next.Parent
	}
	return false
}

// ItemName resolves the display name of a template: the locale entry
// "<id> Name" first, then the template's internal name, then the id.
func (db *Database) ItemName(id string) string {
	if name, ok := db.locale[id+" Name"]; ok && name != "" {
		return name
	}
	if it, ok := db.items[id]; ok && it.Name != "" {
		return it.Name
	}
	return id
}
