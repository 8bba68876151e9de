package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	c := Candidate{
		Date:         "2025-01-10",
		StartTime:    "23:00",
		EndTime:      "00:30",
		Room:         Room256,
		Title:        "  Movie night ",
		OwnerContact: " @bob ",
		Description:  "   ",
	}

	p, err := BuildPayload(c, Rules{}, msk)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-10T20:00:00.000Z", p.Start)
	assert.Equal(t, "2025-01-10T21:30:00.000Z", p.End)
	assert.Equal(t, Room256, p.Room)
	assert.Equal(t, "Movie night", p.Title)
	assert.Equal(t, "@bob", p.OwnerContact)
	assert.False(t, p.IsPrivate)
	assert.Nil(t, p.Description)
}

func TestBuildPayload_KeepsDescription(t *testing.T) {
	c := validCandidate()
	c.Description = "  bring snacks "

	p, err := BuildPayload(c, Rules{}, msk)
	require.NoError(t, err)
	require.NotNil(t, p.Description)
	assert.Equal(t, "bring snacks", *p.Description)
}

func TestBuildPayload_RejectsInvalid(t *testing.T) {
	c := validCandidate()
	c.Date = "2025-01-06"
	c.StartTime = "23:00"
	c.EndTime = "00:30"

	_, err := BuildPayload(c, Rules{}, msk)
	requireCode(t, err, CodeInvalidRollover)
}
