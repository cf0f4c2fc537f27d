package utils

import "regexp"

type embedProvider struct {
	patterns []*regexp.Regexp
	template func(id string) string
}

// Providers are tried in order; within a provider the first matching pattern
// wins.
var embedProviders = []embedProvider{
	{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`youtube\.com/watch\?v=([^&]+)`),
			regexp.MustCompile(`youtu\.be/([^?&]+)`),
			regexp.MustCompile(`youtube\.com/embed/([^?&]+)`),
		},
		template: func(id string) string { return "https://www.youtube.com/embed/" + id },
	},
	{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`),
		},
		template: func(id string) string { return "https://player.vimeo.com/video/" + id },
	},
	{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`drive\.google\.com/file/d/([^/]+)`),
			regexp.MustCompile(`drive\.google\.com/open\?id=([^&]+)`),
		},
		template: func(id string) string { return "https://drive.google.com/file/d/" + id + "/preview" },
	},
}

// EmbedURL maps a YouTube, Vimeo or Google Drive link to the provider's
// embeddable player URL. Unrecognised input is returned unchanged and empty
// input yields an empty string.
func EmbedURL(videoURL string) string {
	if videoURL == "" {
		return ""
	}

	for _, p := range embedProviders {
		for _, re := range p.patterns {
			if m := re.FindStringSubmatch(videoURL); m != nil {
				return p.template(m[1])
			}
		}
	}

	return videoURL
}
