// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts shared across the lockring library. Implementations live in
// internal/concurrency and are re-exported through the ring package.
package api
