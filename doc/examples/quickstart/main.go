// Package quickstart provides simple example code for documentation.
package quickstart

import (
	"encoding/json"
	"fmt"
	"log"
)

// [snippet:generate]
//go:generate go run github.com/broady/typedid/cmd/typedid gen .
// [/snippet:generate]

func exampleUsage() {
	// [snippet:usage]
	id := NewUserID()

	parsed, err := ParseUserID(id.String())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(parsed == id) // true

	// The compiler rejects mixing identifier types:
	// var t TeamID = id  // compile error
	// [/snippet:usage]
}

func exampleJSON() {
	// [snippet:json]
	type Membership struct {
		User UserID `json:"user"`
		Team TeamID `json:"team"`
	}

	data, _ := json.Marshal(Membership{User: NewUserID(), Team: TeamIDFrom(7)})
	fmt.Println(string(data))
	// {"user":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","team":7}
	// [/snippet:json]
}

// Keep imports used.
var (
	_ = exampleUsage
	_ = exampleJSON
)
