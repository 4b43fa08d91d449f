// internal/models/mentor.go
package models

// MentorCard 表示匹配页展示的导师卡片
type MentorCard struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Industry  string   `json:"industry,omitempty"`
	Company   string   `json:"company,omitempty"`
	HelpsWith []string `json:"helps_with,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Match     int      `json:"match"`
}

// SeedMentors 内置的演示导师名册
func SeedMentors() []MentorCard {
	return []MentorCard{
		{
			ID:        "m1",
			Name:      "Samira",
			Title:     "Data Analyst @ FinTech",
			HelpsWith: []string{"CV feedback", "SQL + dashboards", "Interview prep"},
			Bio:       "I help students build projects that get interviews.",
			Match:     92,
		},
		{
			ID:        "m2",
			Name:      "Omar",
			Title:     "Software Engineer @ Startup",
			HelpsWith: []string{"Portfolio", "Technical interviews", "GitHub reviews"},
			Bio:       "Happy to review your resume + give a 30-day plan.",
			Match:     88,
		},
		{
			ID:        "m3",
			Name:      "Lena",
			Title:     "Consultant @ Big4",
			HelpsWith: []string{"Case interviews", "Networking", "Applications"},
			Bio:       "I'll help you structure your story and applications.",
			Match:     85,
		},
	}
}
