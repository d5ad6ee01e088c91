// Package store owns the authoritative client-side collections for
// each entity kind and mediates every mutation through the API client.
// Stores follow a shared shape: Refresh replaces the whole collection,
// mutations apply locally only after the server confirms, and every
// failure surfaces as a human-readable message instead of a raw
// transport error.
//
// Stores are not safe for concurrent use. Overlapping refreshes are
// last-write-wins; callers wanting ordering must serialize themselves.
package store

// Session resolves the current user identity. An empty id means no
// user is signed in; store operations that need an identity treat that
// as a checkable precondition.
type Session interface {
	CurrentUserID() string
}

// StaticSession is a Session with a fixed user id, e.g. from config.
type StaticSession string

// CurrentUserID implements Session.
func (s StaticSession) CurrentUserID() string {
	return string(s)
}
