// SPDX-License-Identifier: EPL-2.0

// Package stats measures whether per-period processing fits within its
// deadline.
//
// A Monitor is bracketed around the real-time work:
//
//	mon.BeginPeriod()
//	// ... process one block ...
//	mon.EndPeriod(blockSize)
//
// Each completed period produces one timing sample: the elapsed
// duration and the CPU usage it represents, where 100% means the work
// took exactly the time budget of the processed samples at the
// configured rate. Samples land in a fixed-capacity circular buffer
// with an overwrite-oldest policy.
//
// Writes happen only on the real-time context; the read accessors may
// run concurrently from a reporting context. Every slot is written
// with a single atomic store, so readers observe stale but never torn
// samples, and the real-time path takes no lock.
package stats
