// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Parsed records model "absent" numbers and annotations as nil pointers
(a missing score is not a zero score), so these helpers keep call sites short.

Key Functions:
  - To: Creates a pointer from a value literal.
  - NonEmpty: Turns an empty string into nil.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for the empty string and a pointer to s otherwise.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
