package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_FormattingHidesPassword(t *testing.T) {
	creds := Credentials{Username: "alice", Password: "secret123"}

	for _, verb := range []string{"%v", "%+v", "%s", "%#v"} {
		out := fmt.Sprintf(verb, creds)
		assert.Contains(t, out, "alice", verb)
		assert.NotContains(t, out, "secret123", verb)
	}
}
