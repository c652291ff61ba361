//go:build typedid

package testfixtures

// OrderID identifies a customer order.
//
//typedid:id
type OrderID struct{}

//typedid:id kind=int32
type ShardID struct{}

//typedid:id kind=int64
type AccountID struct{}

//typedid:id kind=text
type Slug struct{}

//typedid:id kind=opaque
type sessionID struct{}

//typedid:id kind=text
type sessionToken struct{}
