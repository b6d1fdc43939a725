// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package archive fetches records from the remote archive API, caches the
// raw payloads in memory for the life of the process, and keeps the running
// counters the rest of the program reports on.
package archive
