package mw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURI(t *testing.T) {
	tCases := []struct {
		name    string
		uri     string
		want    uriParts
		wantErr bool
	}{
		{
			name: "mid_path",
			uri:  "/immvis/v1/outliers",
			want: uriParts{api: "immvis", version: "v1", method: "outliers"},
		},
		{
			name: "long_path",
			uri:  "/immvis/v1/dimensions/x/statistics",
			want: uriParts{api: "immvis", version: "v1", method: "dimensions"},
		},
		{
			name: "query",
			uri:  "/immvis/v1/dataset/values?pretty=1",
			want: uriParts{api: "immvis", version: "v1", method: "dataset"},
		},
		{
			name:    "err_empty_uri",
			uri:     "",
			wantErr: true,
		},
		{
			name:    "err_no_first_slash",
			uri:     "immvis/v1/outliers",
			wantErr: true,
		},
		{
			name:    "err_single_slash",
			uri:     "/",
			wantErr: true,
		},
		{
			name:    "err_short",
			uri:     "/immvis/v1",
			wantErr: true,
		},
		{
			name:    "err_trailing_slash",
			uri:     "/immvis/v1/",
			wantErr: true,
		},
	}

	for _, tCase := range tCases {
		tCase := tCase
		t.Run(tCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseURI(tCase.uri)
			assert.Equal(t, tCase.wantErr, err != nil)
			assert.Equal(t, tCase.want, got)
		})
	}
}
