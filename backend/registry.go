// Copyright 2026 The slas Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package backend selects between the slas compute backends and carries
// the process-wide default used when a caller does not name one.
package backend

import (
	"fmt"
	"sync"

	nativebackend "github.com/lnicola/slas/internal/backend/native"
	purebackend "github.com/lnicola/slas/internal/backend/pure"
	"github.com/lnicola/slas/internal/vec"
)

// Kind names a compute backend.
type Kind string

// Registered backends.
const (
	Pure   Kind = "pure"
	Native Kind = "native"
)

var (
	mu          sync.Mutex
	defaultKind = Pure
	resolved    bool
)

// SetDefault configures the process-wide default backend. It must run
// before the first Default or DefaultKind call and at most once; later
// calls fail so the dispatch path of existing containers never changes.
func SetDefault(k Kind) error {
	if k != Pure && k != Native {
		return fmt.Errorf("backend %q: %w", k, vec.ErrBackendUnavailable)
	}
	mu.Lock()
	defer mu.Unlock()
	if resolved {
		return fmt.Errorf("backend: default already resolved to %q", defaultKind)
	}
	defaultKind, resolved = k, true
	return nil
}

// DefaultKind reports the default backend, resolving it on first use.
func DefaultKind() Kind {
	mu.Lock()
	defer mu.Unlock()
	resolved = true
	return defaultKind
}

// Default returns the default backend for element type T.
func Default[T vec.Element]() vec.Backend[T] {
	if DefaultKind() == Native {
		return nativebackend.New[T]()
	}
	return purebackend.New[T]()
}

// ByName returns the backend named k for element type T.
func ByName[T vec.Element](k Kind) (vec.Backend[T], error) {
	switch k {
	case Pure:
		return purebackend.New[T](), nil
	case Native:
		return nativebackend.New[T](), nil
	default:
		return nil, fmt.Errorf("backend %q: %w", k, vec.ErrBackendUnavailable)
	}
}
