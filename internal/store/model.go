package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

type presentationRow struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:255;not null"`
	AudioFilename string `gorm:"size:255"`
	Transcript    string `gorm:"type:text"`
	SlidesData    string `gorm:"type:text"`
	Status        string `gorm:"size:20;index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (presentationRow) TableName() string { return "presentations" }

func (r presentationRow) toPresentation() (slide.Presentation, error) {
	p := slide.Presentation{
		ID:            r.ID,
		Title:         r.Title,
		AudioFilename: r.AudioFilename,
		Transcript:    r.Transcript,
		Status:        slide.Status(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.SlidesData != "" {
		if err := json.Unmarshal([]byte(r.SlidesData), &p.Slides); err != nil {
			return slide.Presentation{}, fmt.Errorf("decode slides of presentation %d: %w", r.ID, err)
		}
	}
	return p, nil
}

func encodeSlides(slides []slide.Slide) (string, error) {
	data, err := json.Marshal(slides)
	if err != nil {
		return "", fmt.Errorf("encode slides: %w", err)
	}
	return string(data), nil
}
