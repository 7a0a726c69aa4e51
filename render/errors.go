// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// ErrInvalidSize is returned for a backend canvas without area.
var ErrInvalidSize = errors.New("render: invalid canvas size")
