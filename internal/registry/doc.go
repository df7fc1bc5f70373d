// SPDX-License-Identifier: MPL-2.0

// Package registry builds the resolved name->path registry from discovered
// configuration sources and answers lookups against it.
//
// Sources are merged in the order the provider returns them (low-to-high
// precedence) with plain overwrite on insert, so an entry from a later
// source replaces a same-named entry from an earlier one. The net effect is
// the documented precedence: environment-variable file over user directory
// over configured directories over system directory.
package registry
