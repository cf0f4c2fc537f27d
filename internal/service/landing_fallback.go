package service

import "github.com/MKhiriev/go-portfolio/models"

// FallbackServiceIcon is shown for a service without an icon when no
// fallback icon exists at its position.
const FallbackServiceIcon = "◈"

// MaxLandingServices caps the services section.
const MaxLandingServices = 6

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// FallbackServices are shown until services load; their icons also fill in
// loaded services without one, by position.
func FallbackServices() []models.Service {
	return []models.Service{
		{ID: 1, Title: "Web Development", Description: "Building modern and responsive websites", Icon: "</>"},
		{ID: 2, Title: "System Architecture", Description: "Robust backend and scalable solutions", Icon: "▤"},
		{ID: 3, Title: "Brand & Design", Description: "Crafting unique logos and visual identities", Icon: "✦"},
		{ID: 4, Title: "Academic Writing", Description: "Research papers and scholarly articles", Icon: "🗎"},
		{ID: 5, Title: "UI/UX Design", Description: "User-centered interface design", Icon: "▣"},
		{ID: 6, Title: "Payment Integration", Description: "M-Pesa & Stripe Solutions", Icon: "▤"},
	}
}

func FallbackProjects() []models.Project {
	return []models.Project{
		{
			ID:           1,
			Title:        "FinFlow Payments Platform",
			Slug:         strPtr("finflow-payments-platform"),
			Summary:      "Cross-border payment and reconciliation suite for SMEs.",
			TechTags:     []string{"Java", "Spring Boot", "MySQL", "React"},
			ThumbnailURL: "https://images.unsplash.com/photo-1553729459-efe14ef6055d?auto=format&fit=crop&w=1200&q=80",
			LiveURL:      strPtr("https://example.com"),
			Featured:     true,
			Status:       models.ProjectPublished,
		},
		{
			ID:           2,
			Title:        "Nova Design System",
			Slug:         strPtr("nova-design-system"),
			Summary:      "Reusable UI system with premium interactions and visual consistency.",
			TechTags:     []string{"React", "UI/UX"},
			ThumbnailURL: "https://images.unsplash.com/photo-1498050108023-c5249f4df085?auto=format&fit=crop&w=1200&q=80",
			LiveURL:      strPtr("https://example.com"),
			Featured:     true,
			Status:       models.ProjectPublished,
		},
		{
			ID:           3,
			Title:        "TutorPro LMS",
			Slug:         strPtr("tutorpro-lms"),
			Summary:      "Learning management platform with analytics and role-based dashboards.",
			TechTags:     []string{"Projects", "Java", "React"},
			ThumbnailURL: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=1200&q=80",
			LiveURL:      strPtr("https://example.com"),
			Status:       models.ProjectPublished,
		},
	}
}

func FallbackSkills() []models.Skill {
	return []models.Skill{
		{ID: 1, Category: "Frontend", Name: "React", Level: intPtr(95)},
		{ID: 2, Category: "Frontend", Name: "Tailwind CSS", Level: intPtr(92)},
		{ID: 3, Category: "Backend", Name: "Spring Boot", Level: intPtr(94)},
		{ID: 4, Category: "Backend", Name: "Spring Security/JWT", Level: intPtr(90)},
		{ID: 5, Category: "Database", Name: "MySQL", Level: intPtr(91)},
		{ID: 6, Category: "Design", Name: "UI/UX Systems", Level: intPtr(88)},
	}
}

func FallbackTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:        1,
			Name:      "Aisha Njeri",
			Role:      "Product Lead, NeoPay",
			Quote:     "Kelvin blends product design and engineering depth better than any dev partner we have worked with.",
			AvatarURL: strPtr("https://randomuser.me/api/portraits/women/44.jpg"),
		},
		{
			ID:        2,
			Name:      "Brian Otieno",
			Role:      "Founder, TekBridge",
			Quote:     "Execution quality was outstanding from architecture decisions to polished UI details.",
			AvatarURL: strPtr("https://randomuser.me/api/portraits/men/51.jpg"),
		},
	}
}

func FallbackVideos() []models.Video {
	return []models.Video{
		{
			ID:           1,
			Title:        "Spring Boot JWT Authentication Deep Dive",
			Description:  "Full setup from security config to role-protected APIs.",
			Category:     "Java",
			VideoURL:     "https://www.youtube.com/watch?v=KxqlJblhzfI",
			ThumbnailURL: "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?auto=format&fit=crop&w=1200&q=80",
			Published:    true,
		},
		{
			ID:           2,
			Title:        "React Glassmorphism Portfolio",
			Description:  "Building premium portfolio UI using React and Tailwind.",
			Category:     "React",
			VideoURL:     "https://vimeo.com/76979871",
			ThumbnailURL: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=1200&q=80",
			Published:    true,
		},
		{
			ID:           3,
			Title:        "Product UI/UX Breakdown",
			Description:  "Design hierarchy and interaction strategy for modern products.",
			Category:     "UI/UX",
			VideoURL:     "https://drive.google.com/file/d/1x2z3ExampleId/view?usp=sharing",
			ThumbnailURL: "https://images.unsplash.com/photo-1522542550221-31fd19575a2d?auto=format&fit=crop&w=1200&q=80",
			Published:    true,
		},
	}
}

// withServiceIcons fills missing icons from the fallback at the same index,
// else [FallbackServiceIcon], and caps the list at [MaxLandingServices].
func withServiceIcons(services []models.Service) []models.Service {
	fallback := FallbackServices()

	out := make([]models.Service, 0, min(len(services), MaxLandingServices))
	for i, s := range services {
		if i == MaxLandingServices {
			break
		}
		if s.Icon == "" {
			s.Icon = FallbackServiceIcon
			if i < len(fallback) {
				s.Icon = fallback[i].Icon
			}
		}
		out = append(out, s)
	}
	return out
}
