package types

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserKey(t *testing.T) {
	tCases := []struct {
		name         string
		ctx          context.Context
		wantUserName string
		wantErr      error
	}{
		{
			name:         "success",
			ctx:          context.WithValue(context.Background(), UserKey{}, "analyst"),
			wantUserName: "analyst",
		},
		{
			name:    "err_no_user",
			ctx:     context.Background(),
			wantErr: ErrNoUser,
		},
		{
			name:    "err_bad_value_type",
			ctx:     context.WithValue(context.Background(), UserKey{}, 99999),
			wantErr: ErrBadUserKeyValueType,
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			gotUserName, gotErr := GetUserKey(tCase.ctx)
			assert.ErrorIs(t, gotErr, tCase.wantErr)
			assert.Equal(t, tCase.wantUserName, gotUserName)
		})
	}
}
