package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_SharesTag(t *testing.T) {
	python := Event{ID: 0, Tags: []string{"python", "web"}}
	web := Event{ID: 1, Tags: []string{"web"}}
	data := Event{ID: 2, Tags: []string{"data"}}
	untagged := Event{ID: 3}

	assert.True(t, python.SharesTag(web))
	assert.True(t, web.SharesTag(python))
	assert.False(t, python.SharesTag(data))
	assert.False(t, untagged.SharesTag(python))
	assert.False(t, untagged.SharesTag(untagged))
}

func TestSession_Contains(t *testing.T) {
	session := Session{ID: 0, Slots: []int{0, 1}}

	assert.True(t, session.Contains(0))
	assert.True(t, session.Contains(1))
	assert.False(t, session.Contains(2))
}
