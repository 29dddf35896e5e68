// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime statistics and debug introspection for
// hioload-resume drivers.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed config snapshots with validated updates and reload listeners
//   - Lifecycle statistics fed by resumable.Observer hooks
//   - State export through named debug probes
package control
