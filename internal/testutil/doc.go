// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by jiu's tests: in-memory and
// on-disk recipe file fixtures, environment isolation and platform guards.
package testutil
