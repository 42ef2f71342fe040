// Package pacman provides the package-manager operations of the cleanup
// actions for Arch-family systems.
//
// All operations are performed via a proc.Runner calling the pacman and
// paccache (pacman-contrib) binaries, rather than reading the local
// package database directly. This approach:
//   - Uses the exact dependency resolution pacman applies interactively
//   - Keeps the removal transaction (hooks, locks, logs) inside pacman
//   - Requires only the binaries on PATH
//
// The Manager struct provides methods for querying orphans, removing them,
// and pruning the package cache.
package pacman
