// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard math package.
//
// The incomplete beta and gamma functions are thin wrappers around
// gonum's mathext that fix argument order and handle the boundary
// cases distributions hit most often.
package mathx // import "github.com/aclements/go-moredist/mathx"

import "math"

var nan = math.NaN()
