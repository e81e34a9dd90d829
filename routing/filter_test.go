package routing_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dispatch/routing"
)

func TestMethodFilter_Matches(t *testing.T) {
	f := routing.MethodGet | routing.MethodHead

	assert.True(t, f.Matches(http.MethodGet))
	assert.True(t, f.Matches(http.MethodHead))
	assert.False(t, f.Matches(http.MethodPost))
	assert.False(t, f.Matches("get"))
	assert.False(t, routing.MethodAny.Matches("PROPFIND"))
}

func TestMethodFilter_String(t *testing.T) {
	assert.Equal(t, "GET|POST", (routing.MethodPost | routing.MethodGet).String())
	assert.Equal(t, "NONE", routing.MethodFilter(0).String())
}

func TestParseMethodFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    routing.MethodFilter
		wantErr bool
	}{
		{"GET", routing.MethodGet, false},
		{"get, post", routing.MethodGet | routing.MethodPost, false},
		{"PUT|PATCH", routing.MethodPut | routing.MethodPatch, false},
		{"*", routing.MethodAny, false},
		{"any", routing.MethodAny, false},
		{"", 0, true},
		{"FETCH", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := routing.ParseMethodFilter(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
