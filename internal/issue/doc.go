// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error handling: a catalog of known
// issues with rendered markdown remediation text, and the ActionableError
// type carrying operation/resource/suggestion context.
package issue
