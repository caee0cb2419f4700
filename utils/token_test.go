package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerTokenRoundTrip(t *testing.T) {
	tok, err := GenerateCustomerToken("cust-123", "secret", time.Hour)
	require.NoError(t, err)

	id, err := ParseCustomerToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "cust-123", id)
}

func TestCustomerTokenWrongSecret(t *testing.T) {
	tok, err := GenerateCustomerToken("cust-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseCustomerToken(tok, "other")
	assert.Error(t, err)
}

func TestCustomerTokenExpired(t *testing.T) {
	tok, err := GenerateCustomerToken("cust-123", "secret", -time.Hour)
	require.NoError(t, err)

	_, err = ParseCustomerToken(tok, "secret")
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 390.0, Round2(350+40.0))
	assert.Equal(t, 0.1, Round2(0.1+1e-9))
	assert.Equal(t, 123.46, Round2(123.455000001))
}
