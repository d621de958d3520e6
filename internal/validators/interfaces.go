// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks payloads coming from devices and operators
// before they reach the sync services: reading-state pushes and per-user
// sync settings.
package validators

import "context"

// Validator validates obj. fields, when given, restrict the check to the
// named fields of obj.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
