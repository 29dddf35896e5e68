// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides an edge-triggered readiness poller that serves as
// the reactor binding for resumable computations (epoll on Linux).
package reactor
