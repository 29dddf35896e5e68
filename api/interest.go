// File: api/interest.go
// Author: momentics <momentics@gmail.com>
//
// Readiness interest and the wait descriptor produced by a suspension.

package api

import (
	"fmt"
	"strings"
)

// Interest is a set of readiness conditions.
type Interest uint8

const (
	Readable Interest = 1 << iota
	Writable
)

// IsReadable reports whether the readable bit is set.
func (i Interest) IsReadable() bool { return i&Readable != 0 }

// IsWritable reports whether the writable bit is set.
func (i Interest) IsWritable() bool { return i&Writable != 0 }

func (i Interest) String() string {
	if i == 0 {
		return "none"
	}
	var parts []string
	if i.IsReadable() {
		parts = append(parts, "readable")
	}
	if i.IsWritable() {
		parts = append(parts, "writable")
	}
	if rest := i &^ (Readable | Writable); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// WaitDescriptor names the resource and readiness condition a suspended
// computation is waiting on. It stays valid until the next resume.
type WaitDescriptor struct {
	Fd       Fd
	Interest Interest
}

func (wd WaitDescriptor) String() string {
	return fmt.Sprintf("fd=%d interest=%s", wd.Fd, wd.Interest)
}
