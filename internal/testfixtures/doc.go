// Package testfixtures pins the generator end to end: the placeholder
// declarations in defs.go expand into the committed *_typedid.go files
// alongside, and the tests in this directory run the generated members
// against real encoders, form decoders, and database driver values.
//
// After editing defs.go, refresh the committed output:
//
//	go generate ./internal/testfixtures
package testfixtures

//go:generate go run github.com/broady/typedid/cmd/typedid gen .
