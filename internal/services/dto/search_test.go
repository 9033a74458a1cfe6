package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteriaValues(t *testing.T) {
	c := NewFilterCriteria()
	c.Gender = "female"
	c.BodyType = "all" // sentinel, equivalent to unset
	c.AgeMin = ""

	values, err := c.Values()
	assert.NoError(t, err)

	assert.Equal(t, "female", values.Get("gender"))
	assert.Equal(t, "newest", values.Get("sort"))
	assert.False(t, values.Has("bodyType"), "the all sentinel must be omitted")
	assert.False(t, values.Has("ageMin"))
	assert.False(t, values.Has("page"), "page one is the default and is omitted")
}

func TestFilterCriteriaValuesPagination(t *testing.T) {
	c := NewFilterCriteria()
	c.Page = 3

	values, err := c.Values()
	assert.NoError(t, err)
	assert.Equal(t, "3", values.Get("page"))
}

func TestFilterCriteriaDefaults(t *testing.T) {
	c := NewFilterCriteria()
	assert.Equal(t, "newest", c.Sort)
	assert.Equal(t, 1, c.Page)

	// The default criteria serialize to just the sort key.
	values, err := c.Values()
	assert.NoError(t, err)
	assert.Len(t, values, 1)
}
