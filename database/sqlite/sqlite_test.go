package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := NewInMemory()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))

	var tables []string
	require.NoError(t, db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`))

	assert.Equal(t, []string{
		"blog_posts",
		"contacts",
		"experiences",
		"profiles",
		"project_templates",
		"projects",
		"services",
		"skill_categories",
		"skills",
		"testimonials",
	}, tables)
}

func TestRebindUsesQuestionMarks(t *testing.T) {
	db, err := NewInMemory()
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "SELECT ? , ?", db.Rebind("SELECT ? , ?"))
}
