// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package version

// Version is stamped at release time via -ldflags.
var Version = "0.2.0-dev"
