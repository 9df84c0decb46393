// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strconv"
)

// ErrInvalidOwner is returned by [NewOwner] for non-positive user IDs.
var ErrInvalidOwner = errors.New("invalid owner")

// Owner is the capability every vault accessor requires. It identifies the
// authenticated vault owner and is minted only after the master credential
// has been verified (or by a trusted front end via [NewOwner]).
//
// The zero value is not a valid owner; vault operations reject it.
type Owner struct {
	userID int64
}

// NewOwner returns an Owner for userID. userID must be positive.
func NewOwner(userID int64) (Owner, error) {
	if userID <= 0 {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{userID: userID}, nil
}

// UserID returns the identifier of the owning user.
func (o Owner) UserID() int64 {
	return o.userID
}

// Valid reports whether o was minted for a real user.
func (o Owner) Valid() bool {
	return o.userID > 0
}

func (o Owner) String() string {
	return "owner:" + strconv.FormatInt(o.userID, 10)
}
