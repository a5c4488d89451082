package dto

// StartTrainingRequest represents the request payload for starting a
// training job. Both fields are optional and fall back to the service
// defaults.
type StartTrainingRequest struct {
	TriggerWord string `json:"triggerWord"`
	Steps       int    `json:"steps"`
}
