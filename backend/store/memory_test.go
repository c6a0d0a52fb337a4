package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeprep/backend/models"
)

func TestMemoryStore(t *testing.T) {
	st := NewMemory()

	_, err := st.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	user := models.User{Email: "a@example.com", Solved: []string{"Google::Two Sum"}}
	require.NoError(t, st.Create(&user))
	assert.NotZero(t, user.ID)

	found, err := st.FindByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
	assert.Equal(t, []string{"Google::Two Sum"}, []string(found.Solved))

	// FindByEmail hands out a copy; mutating it must not leak back.
	found.Solved = append(found.Solved, "Google::3Sum")
	again, err := st.FindByEmail("a@example.com")
	require.NoError(t, err)
	assert.Len(t, again.Solved, 1)

	// Save is last-write-wins on the whole record.
	found.SolvedDates = []string{"2024-01-01"}
	require.NoError(t, st.Save(found))
	saved, err := st.FindByEmail("a@example.com")
	require.NoError(t, err)
	assert.Len(t, saved.Solved, 2)
	assert.Equal(t, []string{"2024-01-01"}, []string(saved.SolvedDates))
}
