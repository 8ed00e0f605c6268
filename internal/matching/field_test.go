package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldAlignment_SameDomainGroup(t *testing.T) {
	assert.Equal(t, 1.0, FieldAlignment("Computer Science", "Technology"))
	assert.Equal(t, 1.0, FieldAlignment("Medicine", "Healthcare"))
	assert.Equal(t, 1.0, FieldAlignment("Economics", "Banking"))
}

func TestFieldAlignment_NormalizesInputs(t *testing.T) {
	assert.Equal(t, 1.0, FieldAlignment("  COMPUTER SCIENCE ", "Tech!"))
}

func TestFieldAlignment_SubstringRelation(t *testing.T) {
	assert.Equal(t, 0.7, FieldAlignment("Data Science", "Science"))
}

func TestFieldAlignment_Unrelated(t *testing.T) {
	assert.Equal(t, 0.0, FieldAlignment("Law", "Technology"))
}

func TestFieldAlignment_EmptySides(t *testing.T) {
	assert.Equal(t, 0.0, FieldAlignment("", "Technology"))
	assert.Equal(t, 0.0, FieldAlignment("Computer Science", ""))
	assert.Equal(t, 0.0, FieldAlignment("", ""))
}
