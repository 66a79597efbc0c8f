package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NowUTC().Location())
}

func TestLater(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Second)

	assert.Equal(t, late, Later(early, late))
	assert.Equal(t, late, Later(late, early))
	assert.Equal(t, early, Later(early, early))
}
