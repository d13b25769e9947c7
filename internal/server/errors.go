// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersConfigured is returned by NewServer when the handlers carry no
// transport to serve.
var errNoServersConfigured = errors.New("no transport servers configured")
