package gateway_test

import (
	"errors"
	"testing"

	"github.com/braindump-app/braindump/pkg/service/gateway"
	"github.com/m-mizutani/gt"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"http 429", errors.New("googleapi: Error 429: Too Many Requests"), true},
		{"quota exceeded", errors.New("Quota exceeded for model"), true},
		{"rate limit", errors.New("Rate limit reached"), true},
		{"resource exhausted", errors.New("rpc error: code = RESOURCE_EXHAUSTED"), true},
		{"internal error", errors.New("500 Internal Server Error"), false},
		{"invalid argument", errors.New("invalid argument: bad request"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, gateway.IsTransient(tc.err)).Equal(tc.want)
		})
	}
}
