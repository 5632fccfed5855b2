// Package concurrency implements the cursor-tracked locked ring buffer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The public surface is re-exported by the ring package; external code
// should not import this package directly.
package concurrency
