// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package native provides the direct runtime: each Read or Write performs
// exactly one syscall on the descriptor and reports would-block as an
// ordinary error. Use it outside a resumable computation, or as the syscall
// layer underneath one.
package native
