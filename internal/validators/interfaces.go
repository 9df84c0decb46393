// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of vault requests before they reach
// storage or the cipher: entry labels, entry ids, usernames, emails and the
// presence of secrets. Password strength is not judged here; that belongs to
// the policy package.
//
// Every failure is one of the field specific sentinels in errors.go.
package validators

import "context"

// Validator validates a request value. When fields are given only those
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
