package testkit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks the response code.
func AssertStatusCode(t *testing.T, scenario *Scenario, got int) {
	t.Helper()
	assert.Equal(t, scenario.ExpectedCode, got,
		"[%s] HTTP status code mismatch", scenario.Name)
}

// AssertJSONBody compares both bodies after decoding them, so key order and
// whitespace never matter. Fields named in IgnoreFields are dropped from
// both sides first. An empty expected body skips the check.
func AssertJSONBody(t *testing.T, scenario *Scenario, expected, actual []byte) {
	t.Helper()
	if len(expected) == 0 {
		return
	}

	var expVal, actVal interface{}

	require.NoError(t,
		json.Unmarshal(expected, &expVal),
		"[%s] expected response is not valid JSON", scenario.Name,
	)

	if !assert.NoError(t,
		json.Unmarshal(actual, &actVal),
		"[%s] actual response is not valid JSON\nbody: %s", scenario.Name, string(actual),
	) {
		return
	}

	for _, path := range scenario.IgnoreFields {
		segments := strings.Split(path, ".")
		drop(expVal, segments)
		drop(actVal, segments)
	}

	assert.Equal(t, expVal, actVal, "[%s] response body mismatch", scenario.Name)
}

// drop deletes the field at path. Arrays are walked element by element, so
// "id" removes the id of every item in a list response.
func drop(v interface{}, path []string) {
	if len(path) == 0 {
		return
	}
	switch node := v.(type) {
	case map[string]interface{}:
		if len(path) == 1 {
			delete(node, path[0])
			return
		}
		drop(node[path[0]], path[1:])
	case []interface{}:
		for _, item := range node {
			drop(item, path)
		}
	}
}
