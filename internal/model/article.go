package model

// Article is one listing entry extracted from a GeekNews page. Values
// are constructed once by the parser and never mutated afterwards.
type Article struct {
	Rank         int    `json:"rank"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Points       int    `json:"points"`
	Author       string `json:"author"`
	Time         string `json:"time"`
	CommentCount int    `json:"commentCount"`
}
