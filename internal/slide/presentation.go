package slide

import "time"

// Status is the lifecycle state of a presentation.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether no further status transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Presentation is the persisted aggregate.
type Presentation struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	AudioFilename string    `json:"audio_filename,omitempty"`
	Transcript    string    `json:"transcript,omitempty"`
	Slides        []Slide   `json:"slides"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
