// Package app encapsulates the host application's dependencies,
// configuration and lifecycle: it owns the logger, resolves the effective
// configuration from CLI flags and the optional host config file, finds the
// pages to render, and drives one session per page.
package app
