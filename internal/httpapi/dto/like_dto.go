package dto

// LikeResponse: the post-toggle like state for a project
type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
