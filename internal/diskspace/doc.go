// Package diskspace measures how much space a cleanup action gave back.
//
// It samples free bytes on the filesystem holding a directory before and
// after an action, using gopsutil's statfs wrapper. The Probe interface is
// the seam tests replace.
package diskspace
