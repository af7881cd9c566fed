package ports

// History abstracts the navigation history the route resolver sits on: an
// ordered list of visited paths with a cursor, mirroring browser
// push/replace/back/forward semantics.
//
// Only externally triggered moves (Back, Forward) notify subscribers;
// Push and Replace do not, matching the browser contract where pushState
// never fires popstate.
type History interface {
	// Location returns the path at the cursor.
	Location() string

	// Push appends a new entry after the cursor, dropping any forward
	// entries, and moves the cursor to it.
	Push(path string)

	// Replace overwrites the entry at the cursor in place.
	Replace(path string)

	// Back moves the cursor one entry towards the oldest, notifying
	// subscribers. At the oldest entry it is a no-op.
	Back()

	// Forward moves the cursor one entry towards the newest, notifying
	// subscribers. At the newest entry it is a no-op.
	Forward()

	// Subscribe registers a listener invoked with the new path after
	// every Back/Forward move. The returned id is used to unsubscribe.
	Subscribe(fn func(path string)) int

	// Unsubscribe removes a listener. Unknown ids are ignored.
	Unsubscribe(id int)
}
