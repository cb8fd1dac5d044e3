package envconf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvConf(t *testing.T) {
	ctx := context.Background()
	e := &Environment{}
	b, err := e.Read(ctx, "not_in_env_i_hope_SDFSDFSDFSDFSDF")
	assert.NoError(t, err)
	assert.Nil(t, b)
	t.Setenv("test_TestEnvConf", "abc")
	b, err = e.Read(ctx, "test_TestEnvConf")
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)
}

func TestEnvConf_empty(t *testing.T) {
	t.Setenv("test_TestEnvConf_empty", "")
	b, err := (&Environment{}).Read(context.Background(), "test_TestEnvConf_empty")
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Empty(t, b)
}

func TestEnvConf_lookup(t *testing.T) {
	calls := 0
	e := &Environment{
		LookupEnv: func(key string) (string, bool) {
			calls++
			if key == "HOST" {
				return "localhost", true
			}
			return "", false
		},
	}
	b, err := e.Read(context.Background(), "HOST")
	assert.NoError(t, err)
	assert.Equal(t, []byte("localhost"), b)

	b, err = e.Read(context.Background(), "PORT")
	assert.NoError(t, err)
	assert.Nil(t, b)
	assert.Equal(t, 2, calls)
}
