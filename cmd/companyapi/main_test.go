package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteListPrintsTable(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"route:list"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	table := out.String()
	assert.Contains(t, table, "METHOD")
	assert.Contains(t, table, "/customers/{id}")
	assert.Contains(t, table, "orders.destroy")
	assert.Contains(t, table, "/metrics")
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"serve", "route:list", "migrate", "migrate:rollback", "migrate:status", "seed"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
