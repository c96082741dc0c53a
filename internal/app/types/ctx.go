package types

import (
	"context"
	"errors"
)

// UserHeader carries the caller name used for rate limiting and request logs.
const UserHeader = "X-Immvis-User"

var (
	ErrNoUser              = errors.New("no user in context")
	ErrBadUserKeyValueType = errors.New("invalid user value type")
)

type UserKey struct{}

// GetUserKey returns username from context.
func GetUserKey(ctx context.Context) (string, error) {
	userVal := ctx.Value(UserKey{})
	if userVal == nil {
		return "", ErrNoUser
	}

	userStr, ok := userVal.(string)
	// foolproof.
	if !ok {
		return "", ErrBadUserKeyValueType
	}

	return userStr, nil
}
