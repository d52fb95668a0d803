package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

func (s *implStore) Create(ctx context.Context, p *slide.Presentation) error {
	row := presentationRow{
		Title:         p.Title,
		AudioFilename: p.AudioFilename,
		Transcript:    p.Transcript,
		Status:        string(slide.StatusProcessing),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create presentation: %w", err)
	}

	p.ID = row.ID
	p.Status = slide.StatusProcessing
	p.CreatedAt = row.CreatedAt
	p.UpdatedAt = row.UpdatedAt
	s.logger.Debug(ctx, "Created presentation %d", row.ID)
	return nil
}

func (s *implStore) Get(ctx context.Context, id uint) (slide.Presentation, error) {
	var row presentationRow
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return slide.Presentation{}, ErrNotFound
		}
		return slide.Presentation{}, fmt.Errorf("get presentation %d: %w", id, err)
	}
	return row.toPresentation()
}

func (s *implStore) List(ctx context.Context) ([]slide.Presentation, error) {
	var rows []presentationRow
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}

	out := make([]slide.Presentation, 0, len(rows))
	for _, r := range rows {
		p, err := r.toPresentation()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *implStore) SetTranscript(ctx context.Context, id uint, transcript string) error {
	return s.update(ctx, id, "", map[string]interface{}{"transcript": transcript})
}

func (s *implStore) SetTitle(ctx context.Context, id uint, title string) error {
	return s.update(ctx, id, "", map[string]interface{}{"title": title})
}

func (s *implStore) Complete(ctx context.Context, id uint, slides []slide.Slide) error {
	data, err := encodeSlides(slides)
	if err != nil {
		return err
	}
	return s.update(ctx, id, slide.StatusProcessing, map[string]interface{}{
		"slides_data": data,
		"status":      string(slide.StatusCompleted),
	})
}

func (s *implStore) Fail(ctx context.Context, id uint) error {
	return s.update(ctx, id, slide.StatusProcessing, map[string]interface{}{
		"status": string(slide.StatusError),
	})
}

func (s *implStore) ReplaceSlides(ctx context.Context, id uint, slides []slide.Slide) error {
	data, err := encodeSlides(slides)
	if err != nil {
		return err
	}
	return s.update(ctx, id, slide.StatusCompleted, map[string]interface{}{
		"slides_data": data,
	})
}

// update applies fields to presentation id. A non-empty from restricts the
// update to rows currently in that status.
func (s *implStore) update(ctx context.Context, id uint, from slide.Status, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	q := s.db.WithContext(ctx).Model(&presentationRow{}).Where("id = ?", id)
	if from != "" {
		q = q.Where("status = ?", string(from))
	}

	res := q.Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update presentation %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if from == slide.StatusProcessing {
		return fmt.Errorf("%w: status is %s", ErrTerminal, current.Status)
	}
	return fmt.Errorf("%w: status is %s", ErrNotCompleted, current.Status)
}
