// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyActor is returned when a workflow transition request carries no
// actor identity in its JSON body. Callers can match against it with
// [errors.Is].
var ErrEmptyActor = errors.New("empty actor identity")
