package luciv1

import "time"

type Emotion struct {
	Id           int64     `json:"id"`
	Reference    string    `json:"reference"`
	Pleasantness float64   `json:"pleasantness"`
	Attention    float64   `json:"attention"`
	Sensitivity  float64   `json:"sensitivity"`
	Aptitude     float64   `json:"aptitude"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmotionDelta carries per-dimension increments. Absent dimensions are left
// unchanged.
type EmotionDelta struct {
	Pleasantness *float64 `json:"pleasantness,omitempty"`
	Attention    *float64 `json:"attention,omitempty"`
	Sensitivity  *float64 `json:"sensitivity,omitempty"`
	Aptitude     *float64 `json:"aptitude,omitempty"`
}

type ListEmotionsRequest struct {
	Reference string `json:"reference"`
}

func (x *ListEmotionsRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

type ListEmotionsResponse struct {
	Emotions []*Emotion `json:"emotions"`
}

type UpdateEmotionRequest struct {
	Reference string `json:"reference"`
	EmotionDelta
}

func (x *UpdateEmotionRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *UpdateEmotionRequest) GetDelta() *EmotionDelta {
	if x != nil {
		return &x.EmotionDelta
	}
	return nil
}
