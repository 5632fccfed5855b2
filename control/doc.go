// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for lockring deployments.
// Concurrent-safe registry of static counters plus live probes, used by
// the examples to publish ring occupancy and throughput figures.
package control
