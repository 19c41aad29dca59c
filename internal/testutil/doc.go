// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include file fixtures (MustWriteFile, MustMkdirAll),
// working directory changes (MustChdir) and config directory isolation
// (SetConfigHome).
package testutil
