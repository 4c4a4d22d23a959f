package models

// Stash is one entry from the stash reflog.
type Stash struct {
	Index   int
	ID      string // reflog selector, e.g. "stash@{0}"
	Message string
}
