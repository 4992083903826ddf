package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateKey_ScopedToService(t *testing.T) {
	key := rateKey("203.0.113.9", "GET", "/api/v1/store/catalog")

	assert.Equal(t, "toystore:rl:203.0.113.9:GET:/api/v1/store/catalog", key)
	assert.Equal(t, key+":resetAt", rateResetKey("203.0.113.9", "GET", "/api/v1/store/catalog"))
}

func TestRateKey_DistinguishesCallers(t *testing.T) {
	base := rateKey("203.0.113.9", "GET", "/api/v1/store/catalog")

	assert.NotEqual(t, base, rateKey("203.0.113.10", "GET", "/api/v1/store/catalog"),
		"each IP gets its own budget")
	assert.NotEqual(t, base, rateKey("203.0.113.9", "POST", "/api/v1/store/catalog"))
	assert.NotEqual(t, base, rateKey("203.0.113.9", "GET", "/api/v1/store/categories"))
}
