// Package objects implements the per-connection object-id table:
// every live id maps to exactly one (interface, version) pair. Id 1 is
// always pre-populated as wl_display v1.
package objects

// Object records the interface and version bound to one object id.
type Object struct {
	Interface string
	Version   uint32
}

// Table is a per-connection map of object id to Object. The zero value
// is not usable; construct with New.
type Table struct {
	objects map[uint32]Object
}

// New returns a Table pre-populated with {1: wl_display v1}.
func New() *Table {
	return &Table{
		objects: map[uint32]Object{
			1: {Interface: "wl_display", Version: 1},
		},
	}
}

// Insert records id as the given interface/version. Duplicate inserts
// overwrite the previous binding — this matches the source's lenient
// behavior (see DESIGN.md open question on duplicate ids) rather than
// reporting wl_display.error(INVALID_OBJECT).
func (t *Table) Insert(id uint32, iface string, version uint32) {
	t.objects[id] = Object{Interface: iface, Version: version}
}

// Lookup returns the Object bound to id, and whether it exists.
func (t *Table) Lookup(id uint32) (Object, bool) {
	obj, ok := t.objects[id]
	return obj, ok
}

// Remove drops id from the table. Removing an absent id is a no-op.
func (t *Table) Remove(id uint32) {
	delete(t.objects, id)
}

// Len reports the number of live objects, including wl_display.
func (t *Table) Len() int {
	return len(t.objects)
}

// Each calls fn once per live (id, Object) pair. Iteration order is
// Go's randomized map order, not insertion order.
func (t *Table) Each(fn func(id uint32, obj Object)) {
	for id, obj := range t.objects {
		fn(id, obj)
	}
}
