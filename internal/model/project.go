package model

// Project categories as they appear in the bundled catalog.
const (
	CategoryWeb     = "web"
	CategoryBackend = "backend"
	CategoryAI      = "ai"
	CategoryMobile  = "mobile"
	CategoryOther   = "other"
)

// Project is one entry of the portfolio's project catalog.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	TechStack       []string `json:"techStack"`
	GithubURL       string   `json:"githubUrl"`
	LiveURL         string   `json:"liveUrl,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Featured        bool     `json:"featured"`
	Category        string   `json:"category"` // "web" | "backend" | "ai" | "mobile" | "other"
}

// ProjectListOptions carries filter parameters for listing projects.
type ProjectListOptions struct {
	// Category filters by project category; empty returns all.
	Category string
	// Featured, when non-nil, filters by the featured flag.
	Featured *bool
}
