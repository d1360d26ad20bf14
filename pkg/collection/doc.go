// Package collection provides small generic helpers for reshaping slices and
// maps: indexing a slice by key, reading map values back in key order, joining
// slices and deep-copying nested data.
//
//	byID := collection.KeyBy(users, func(u User) string { return u.ID })
//	list := collection.Values(byID) // ordered by id
//
// The helpers never modify their inputs and are safe for concurrent use.
package collection
