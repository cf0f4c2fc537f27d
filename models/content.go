// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Content is the singleton record holding the site copy, contact links and
// the resume/CV file references.
//
// The record is loaded once, edited as a whole and submitted wholesale with a
// full-record update call.
type Content struct {
	ID int64 `json:"id,omitempty"`

	BrandName      string `json:"brandName"`
	NavHireCtaText string `json:"navHireCtaText"`

	HeroTitle            string `json:"heroTitle"`
	HeroHighlight        string `json:"heroHighlight"`
	HeroSubheadline      string `json:"heroSubheadline"`
	HeroDescription      string `json:"heroDescription"`
	HeroPrimaryCtaText   string `json:"heroPrimaryCtaText"`
	HeroPrimaryCtaLink   string `json:"heroPrimaryCtaLink"`
	HeroSecondaryCtaText string `json:"heroSecondaryCtaText"`
	HeroSecondaryCtaLink string `json:"heroSecondaryCtaLink"`
	HeroTagOne           string `json:"heroTagOne"`
	HeroTagTwo           string `json:"heroTagTwo"`
	HeroTagThree         string `json:"heroTagThree"`
	ProfileImageURL      string `json:"profileImageUrl"`

	AboutTitle       string `json:"aboutTitle"`
	AboutDescription string `json:"aboutDescription"`

	StatOneValue   string `json:"statOneValue"`
	StatOneLabel   string `json:"statOneLabel"`
	StatTwoValue   string `json:"statTwoValue"`
	StatTwoLabel   string `json:"statTwoLabel"`
	StatThreeValue string `json:"statThreeValue"`
	StatThreeLabel string `json:"statThreeLabel"`

	ServicesTitle     string `json:"servicesTitle"`
	WorkTitle         string `json:"workTitle"`
	SkillsTitle       string `json:"skillsTitle"`
	TestimonialsTitle string `json:"testimonialsTitle"`
	VideosTitle       string `json:"videosTitle"`
	ContactTitle      string `json:"contactTitle"`
	ContactCardTitle  string `json:"contactCardTitle"`

	ContactEmail string `json:"contactEmail"`
	WhatsappURL  string `json:"whatsappUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	GithubURL    string `json:"githubUrl"`
	TiktokURL    string `json:"tiktokUrl"`

	ResumeOriginalName    string `json:"resumeOriginalName"`
	ResumeStoredName      string `json:"resumeStoredName"`
	ResumeVisible         bool   `json:"resumeVisible"`
	ResumeDownloadEnabled bool   `json:"resumeDownloadEnabled"`

	CVOriginalName    string `json:"cvOriginalName"`
	CVStoredName      string `json:"cvStoredName"`
	CVVisible         bool   `json:"cvVisible"`
	CVDownloadEnabled bool   `json:"cvDownloadEnabled"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ContentFileType names one of the two file slots of [Content].
type ContentFileType string

const (
	ContentFileResume ContentFileType = "resume"
	ContentFileCV     ContentFileType = "cv"
)

// DefaultContent returns the built-in site copy. It is the baseline of the
// admin content form and the fallback of the public landing page.
func DefaultContent() Content {
	return Content{
		BrandName:            "KELLYFLO",
		NavHireCtaText:       "Hire Me",
		HeroTitle:            "Crafting Digital Experiences",
		HeroHighlight:        "Future",
		HeroSubheadline:      "Creative Developer • Brand Designer • Systems Architect",
		HeroDescription:      "I design and build powerful digital systems that merge creativity and technology into impactful solutions.",
		HeroPrimaryCtaText:   "View My Work",
		HeroPrimaryCtaLink:   "#work",
		HeroSecondaryCtaText: "Let's Build Something iconic",
		HeroSecondaryCtaLink: "#contact",
		HeroTagOne:           "Full Stack Developer",
		HeroTagTwo:           "UI/UX Expert",
		HeroTagThree:         "Payment Integrations",
		ProfileImageURL:      "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=900&q=80",
		AboutTitle:           "Who is Kelvin Simiyu?",
		AboutDescription:     "I'm a multidisciplinary creative engineer dedicated to transforming ideas into reality.",
		StatOneValue:         "50+",
		StatOneLabel:         "Projects Completed",
		StatTwoValue:         "10+",
		StatTwoLabel:         "Technologies Mastered",
		StatThreeValue:       "20+",
		StatThreeLabel:       "Clients Served",
		ServicesTitle:        "My Services",
		WorkTitle:            "Work / Projects",
		SkillsTitle:          "Skills",
		TestimonialsTitle:    "Testimonials",
		VideosTitle:          "Videos Showcase",
		ContactTitle:         "Contact",
		ContactCardTitle:     "Reach Me",
		ContactEmail:         "kelly123simiyu@gmail.com",
		WhatsappURL:          "https://wa.me/254741178450",
		LinkedinURL:          "https://www.linkedin.com/in/kelvin-simiyu-b04244354",
		GithubURL:            "https://github.com/kelvin-simiyu",
		TiktokURL:            "https://www.tiktok.com/@kelly.the.money.m",
	}
}

// Overlay copies every non-empty string and every set flag of loaded onto c
// and returns the result. File references and flags always come from loaded,
// since an empty stored name means "no file".
func (c Content) Overlay(loaded Content) Content {
	out := c
	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	out.ID = loaded.ID
	str(&out.BrandName, loaded.BrandName)
	str(&out.NavHireCtaText, loaded.NavHireCtaText)
	str(&out.HeroTitle, loaded.HeroTitle)
	str(&out.HeroHighlight, loaded.HeroHighlight)
	str(&out.HeroSubheadline, loaded.HeroSubheadline)
	str(&out.HeroDescription, loaded.HeroDescription)
	str(&out.HeroPrimaryCtaText, loaded.HeroPrimaryCtaText)
	str(&out.HeroPrimaryCtaLink, loaded.HeroPrimaryCtaLink)
	str(&out.HeroSecondaryCtaText, loaded.HeroSecondaryCtaText)
	str(&out.HeroSecondaryCtaLink, loaded.HeroSecondaryCtaLink)
	str(&out.HeroTagOne, loaded.HeroTagOne)
	str(&out.HeroTagTwo, loaded.HeroTagTwo)
	str(&out.HeroTagThree, loaded.HeroTagThree)
	str(&out.ProfileImageURL, loaded.ProfileImageURL)
	str(&out.AboutTitle, loaded.AboutTitle)
	str(&out.AboutDescription, loaded.AboutDescription)
	str(&out.StatOneValue, loaded.StatOneValue)
	str(&out.StatOneLabel, loaded.StatOneLabel)
	str(&out.StatTwoValue, loaded.StatTwoValue)
	str(&out.StatTwoLabel, loaded.StatTwoLabel)
	str(&out.StatThreeValue, loaded.StatThreeValue)
	str(&out.StatThreeLabel, loaded.StatThreeLabel)
	str(&out.ServicesTitle, loaded.ServicesTitle)
	str(&out.WorkTitle, loaded.WorkTitle)
	str(&out.SkillsTitle, loaded.SkillsTitle)
	str(&out.TestimonialsTitle, loaded.TestimonialsTitle)
	str(&out.VideosTitle, loaded.VideosTitle)
	str(&out.ContactTitle, loaded.ContactTitle)
	str(&out.ContactCardTitle, loaded.ContactCardTitle)
	str(&out.ContactEmail, loaded.ContactEmail)
	str(&out.WhatsappURL, loaded.WhatsappURL)
	str(&out.LinkedinURL, loaded.LinkedinURL)
	str(&out.GithubURL, loaded.GithubURL)
	str(&out.TiktokURL, loaded.TiktokURL)

	out.ResumeOriginalName = loaded.ResumeOriginalName
	out.ResumeStoredName = loaded.ResumeStoredName
	out.ResumeVisible = loaded.ResumeVisible
	out.ResumeDownloadEnabled = loaded.ResumeDownloadEnabled
	out.CVOriginalName = loaded.CVOriginalName
	out.CVStoredName = loaded.CVStoredName
	out.CVVisible = loaded.CVVisible
	out.CVDownloadEnabled = loaded.CVDownloadEnabled
	out.CreatedAt = loaded.CreatedAt
	out.UpdatedAt = loaded.UpdatedAt

	return out
}

// HeroTags returns the non-empty hero tags in display order.
func (c Content) HeroTags() []string {
	tags := make([]string, 0, 3)
	for _, t := range []string{c.HeroTagOne, c.HeroTagTwo, c.HeroTagThree} {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
