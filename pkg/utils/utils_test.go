package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	u := New()

	cases := map[string]string{
		"Hello World":            "hello-world",
		"  Héllo,   Wörld!  ":    "hello-world",
		"Go & Docker in 2024":    "go-docker-in-2024",
		"already-a-slug":         "already-a-slug",
		"":                       "",
		"---":                    "",
		"Ünïcödé Tïtlé -- Part 2": "unicode-title-part-2",
	}

	for in, want := range cases {
		assert.Equal(t, want, u.Slugify(in), "input %q", in)
	}
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	a, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	b, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
