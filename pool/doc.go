// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reusable scratch buffers for computations that read and write through a
// resumable runtime. A buffer taken from a pool may be held across any number
// of suspensions; return it once the computation no longer references it.
package pool
