package dto

// GeneratePreviewRequest represents the request payload for the fast
// preview batch. Empty fields fall back to the project defaults.
type GeneratePreviewRequest struct {
	Style      string `json:"style"`
	Background string `json:"background"`
}

// GenerateFullSetRequest represents the request payload for full-set
// generation across one or more styles
type GenerateFullSetRequest struct {
	Styles      []string `json:"styles" binding:"required,min=1"`
	NumPerStyle int      `json:"numPerStyle"`
}
