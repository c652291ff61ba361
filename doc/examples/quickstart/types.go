//go:build typedid

package quickstart

// [snippet:placeholder]

// UserID identifies a registered user.
//
//typedid:id
type UserID struct{}

// TeamID identifies a team.
//
//typedid:id kind=int64
type TeamID struct{}

// [/snippet:placeholder]
