package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSecret(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")

	val, err := GetSecret("SOME_TEST_KEY")
	assert.NoError(t, err)
	assert.Equal(t, "value", val)

	_, err = GetSecret("SOME_MISSING_KEY")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, DEFAULT_LISTEN_ADDR, GetListenAddr())
	assert.Equal(t, DEFAULT_DATABASE_NAME, GetDatabaseName())

	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("MONGODB_DATABASE", "staging")
	assert.Equal(t, ":9999", GetListenAddr())
	assert.Equal(t, "staging", GetDatabaseName())
}
