package models

// Branch is one local branch as reported by git.
type Branch struct {
	Name     string
	Head     bool
	Upstream string // remote-tracking ref, e.g. "origin/main"
	Gone     bool   // upstream no longer exists on the remote
}
