// SPDX-License-Identifier: MPL-2.0

// Package config loads jiu's process settings using Viper bound to the environment.
//
// Settings are read from JIU_-prefixed variables:
//
//	JIU_DEBUG   any value (even empty) enables debug diagnostics on stderr
//	JIU_COLOR   auto (default), always or never
//	JIU_CONFIG  explicit recipe file path; skips the upward .jiu.toml search
package config
