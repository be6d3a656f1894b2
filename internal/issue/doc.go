// SPDX-License-Identifier: MPL-2.0

// Package issue defines the failure modes masklint can guide the user
// through. Each issue couples a stable id with markdown guidance that is
// rendered for the terminal when the corresponding error surfaces in
// verbose mode.
package issue
