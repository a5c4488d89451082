package dto

// UpdateHeadshotRequest represents the user's rating/favorite changes.
// Pointer fields distinguish "not sent" from zero values.
type UpdateHeadshotRequest struct {
	Rating   *int  `json:"rating" binding:"omitempty,min=1,max=5"`
	Favorite *bool `json:"favorite"`
}

// DownloadResponse represents the download URL handed back to the client
type DownloadResponse struct {
	URL string `json:"url"`
}
