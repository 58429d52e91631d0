package feedback

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewID_Unique(t *testing.T) {
	const n = 100_000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("got empty id")
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d generations: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewID_TimeBasedUUID(t *testing.T) {
	id := NewID()

	parsed, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
