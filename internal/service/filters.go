package service

import (
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

// FilterAll is always the first filter option and the initial selection.
const FilterAll = "All"

// DefaultSkillCategory groups skills without a category.
const DefaultSkillCategory = "General"

// ProjectFilters returns "All" followed by every tech tag in first-seen
// order.
func ProjectFilters(projects []models.Project) []string {
	seen := map[string]struct{}{FilterAll: {}}
	filters := []string{FilterAll}

	for _, p := range projects {
		for _, tag := range p.TechTags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			filters = append(filters, tag)
		}
	}
	return filters
}

// FilterProjects keeps the projects whose tag list contains tag exactly.
// "All" keeps everything.
func FilterProjects(projects []models.Project, tag string) []models.Project {
	if tag == FilterAll {
		return projects
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// VideoFilters returns "All" followed by the distinct non-empty trimmed
// categories in first-seen order.
func VideoFilters(videos []models.Video) []string {
	seen := map[string]struct{}{FilterAll: {}}
	filters := []string{FilterAll}

	for _, v := range videos {
		category := strings.TrimSpace(v.Category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		filters = append(filters, category)
	}
	return filters
}

// FilterVideos keeps the videos whose category equals category, ignoring
// case. "All" keeps everything.
func FilterVideos(videos []models.Video, category string) []models.Video {
	if category == FilterAll {
		return videos
	}

	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if strings.EqualFold(v.Category, category) {
			out = append(out, v)
		}
	}
	return out
}

// ResolveFilter returns selected when it is one of options, else "All".
func ResolveFilter(options []string, selected string) string {
	for _, o := range options {
		if o == selected {
			return selected
		}
	}
	return FilterAll
}

// GroupSkills groups skills by category in first-seen order.
func GroupSkills(skills []models.Skill) []models.SkillGroup {
	index := make(map[string]int)
	groups := make([]models.SkillGroup, 0)

	for _, s := range skills {
		key := s.Category
		if key == "" {
			key = DefaultSkillCategory
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.SkillGroup{Category: key})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
