package certificates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTokenFormat(t *testing.T) {
	token := GenerateToken()

	assert.Len(t, token, TokenLength)
	for _, ch := range token {
		assert.True(t, (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f'),
			"token contains non-hex character %q", ch)
	}
}

func TestGenerateTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := GenerateToken()
		assert.False(t, seen[token], "token %s generated twice", token)
		seen[token] = true
	}
}
