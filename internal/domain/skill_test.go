package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSkills(t *testing.T) {
	catalog := []Skill{
		{ID: "id-a", Name: "alpha", Path: "/repo/alpha"},
		{ID: "id-b", Name: "beta", Path: "/repo/beta"},
		{ID: "id-b2", Name: "beta", Path: "/other/beta"},
	}

	t.Run("by id and name in request order", func(t *testing.T) {
		got := ResolveSkills(catalog, []string{"beta", "id-a"})
		assert.Equal(t, []Skill{catalog[1], catalog[0]}, got)
	})

	t.Run("first match per name wins", func(t *testing.T) {
		got := ResolveSkills(catalog, []string{"id-b2", "id-b"})
		assert.Equal(t, []Skill{catalog[2]}, got)
	})

	t.Run("unknown skipped", func(t *testing.T) {
		assert.Empty(t, ResolveSkills(catalog, []string{"nope"}))
	})
}

func TestProjectSkillIDs(t *testing.T) {
	profiles := []Profile{
		{ID: "p1", SkillIDs: []string{"a", "b"}},
		{ID: "p2", SkillIDs: []string{"c"}},
	}
	project := ProjectConfig{ProfileIDs: []string{"p2", "missing", "p1"}, ExtraSkillIDs: []string{"x"}}

	assert.Equal(t, []string{"c", "a", "b", "x"}, ProjectSkillIDs(project, profiles))
}

func TestDesiredFromSkills(t *testing.T) {
	d := DesiredFromSkills([]Skill{{Name: "a", Path: "/1"}, {Name: "a", Path: "/2"}, {Name: "b", Path: "/3"}})
	assert.Equal(t, DesiredLinkSet{"a": "/1", "b": "/3"}, d)
}
