// Package journal vacuums the systemd journal through journalctl.
//
// The size limit is rendered in the largest unit that represents it
// exactly (K, M, G, T; base 1024), falling back to plain bytes.
package journal
