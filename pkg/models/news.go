package models

import "time"

// NewsArticle is one item of the news feed
type NewsArticle struct {
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	Excerpt    string    `json:"excerpt"`
	Author     string    `json:"author,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	Image      string    `json:"image,omitempty"`
	Published  time.Time `json:"published"`
}
