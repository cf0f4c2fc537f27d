package service

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-portfolio/models"
)

func TestProjectFilters(t *testing.T) {
	projects := []models.Project{
		{TechTags: []string{"Go", "React"}},
		{TechTags: []string{"React", "SQL"}},
		{},
	}

	assert.Equal(t, []string{"All", "Go", "React", "SQL"}, ProjectFilters(projects))
	assert.Equal(t, []string{"All"}, ProjectFilters(nil))
}

func TestFilterProjects_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tags := rapid.SliceOfN(rapid.SampledFrom([]string{"Go", "React", "SQL", "UI"}), 0, 3)
		projects := rapid.SliceOf(rapid.Custom(func(t *rapid.T) models.Project {
			return models.Project{TechTags: tags.Draw(t, "tags")}
		})).Draw(t, "projects")

		filters := ProjectFilters(projects)
		if filters[0] != FilterAll {
			t.Fatalf("first filter = %q", filters[0])
		}
		if got := FilterProjects(projects, FilterAll); len(got) != len(projects) {
			t.Fatalf("All kept %d of %d", len(got), len(projects))
		}

		for _, f := range filters[1:] {
			for _, p := range FilterProjects(projects, f) {
				if !slices.Contains(p.TechTags, f) {
					t.Fatalf("project %v does not carry %q", p.TechTags, f)
				}
			}
		}
	})
}

func TestVideoFilters(t *testing.T) {
	videos := []models.Video{
		{Category: " Java "},
		{Category: "React"},
		{Category: ""},
		{Category: "Java"},
	}

	assert.Equal(t, []string{"All", "Java", "React"}, VideoFilters(videos))
}

func TestFilterVideos(t *testing.T) {
	videos := []models.Video{{ID: 1, Category: "Java"}, {ID: 2, Category: "java"}, {ID: 3, Category: "Go"}}

	got := FilterVideos(videos, "JAVA")
	assert.Len(t, got, 2)
	assert.Len(t, FilterVideos(videos, FilterAll), 3)
	assert.Empty(t, FilterVideos(videos, "Rust"))
}

func TestResolveFilter(t *testing.T) {
	options := []string{"All", "Go"}

	assert.Equal(t, "Go", ResolveFilter(options, "Go"))
	assert.Equal(t, FilterAll, ResolveFilter(options, "Rust"))
	assert.Equal(t, FilterAll, ResolveFilter(options, ""))
}

func TestGroupSkills(t *testing.T) {
	skills := []models.Skill{
		{Name: "React", Category: "Frontend"},
		{Name: "Go", Category: "Backend"},
		{Name: "Vim"},
		{Name: "CSS", Category: "Frontend"},
	}

	got := GroupSkills(skills)

	if assert.Len(t, got, 3) {
		assert.Equal(t, "Frontend", got[0].Category)
		assert.Len(t, got[0].Skills, 2)
		assert.Equal(t, "Backend", got[1].Category)
		assert.Equal(t, DefaultSkillCategory, got[2].Category)
	}
	assert.Empty(t, GroupSkills(nil))
}
