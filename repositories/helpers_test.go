package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilderSingleColumn(t *testing.T) {
	var b updateBuilder
	b.set("points", 15)

	query, args := b.query("league_entries", "id", "entry-1")

	assert.Equal(t, "UPDATE league_entries SET points = $1 WHERE id = $2", query)
	assert.Equal(t, []interface{}{15, "entry-1"}, args)
}

// Columns that were never added must not appear in the statement, so a
// points-only update leaves every other stored field untouched.
func TestUpdateBuilderOmitsUnsetColumns(t *testing.T) {
	var b updateBuilder
	b.set("points", 15)
	b.set("goals_for", 6)

	query, args := b.query("league_entries", "id", "entry-1")

	assert.Equal(t, "UPDATE league_entries SET points = $1, goals_for = $2 WHERE id = $3", query)
	assert.Equal(t, []interface{}{15, 6, "entry-1"}, args)
	assert.NotContains(t, query, "matches_played")
	assert.NotContains(t, query, "status")
}

func TestUpdateBuilderEmpty(t *testing.T) {
	var b updateBuilder
	assert.True(t, b.empty())

	b.set("status", "active")
	assert.False(t, b.empty())
}
