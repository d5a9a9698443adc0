// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matneuron

import "cogentcore.org/core/base/errors"

// ErrInvalidParam is returned (wrapped) whenever a constructor or step
// is given a parameter that would corrupt the numerical state:
// non-positive time constants, non-positive dt, mismatched rate lists.
var ErrInvalidParam = errors.New("invalid parameter")
