package models

import "time"

// BlogPost is a published article. AuthorEmail is captured at creation time
// and is the identity the ownership checks compare against.
type BlogPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags"`
	FeatureImage string    `json:"feature_image"`
	Images       []string  `json:"images"`
	AuthorEmail  string    `json:"author_email"`
	CreatedAt    time.Time `json:"created_at"`
}
