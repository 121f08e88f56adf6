package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value   int
	name    string
	enabled bool
}

func TestOption_New(t *testing.T) {
	cfg := &testConfig{}

	opt := New(func(c *testConfig) error {
		if c.value != 0 {
			return errors.New("already set")
		}
		c.value = 42

		return nil
	})

	require.NoError(t, opt.Apply(cfg))
	require.Equal(t, 42, cfg.value)

	require.Error(t, opt.Apply(cfg))
}

func TestOption_NoError(t *testing.T) {
	cfg := &testConfig{}

	opt := NoError(func(c *testConfig) {
		c.enabled = true
	})

	require.NoError(t, opt.Apply(cfg))
	require.True(t, cfg.enabled)
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.name = "first" }),
		NoError(func(c *testConfig) { c.name = "second" }),
	)

	require.NoError(t, err)
	require.Equal(t, "second", cfg.name)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.value = 2 }),
	)

	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, cfg.value, "options after the failing one must not run")
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
