package workshops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ampliy/ampliy/internal/kv"
)

// Progress maps lesson ids to a percentage. Lessons never opened are absent.
type Progress map[string]int

// StartLesson resets the lesson to 0% when its video is opened.
func (s *Service) StartLesson(ctx context.Context, sessionId string, lessonId string) (Progress, error) {
	return s.setProgress(ctx, sessionId, lessonId, ProgressStarted)
}

// CompleteLesson marks the lesson 100% once its video ends.
func (s *Service) CompleteLesson(ctx context.Context, sessionId string, lessonId string) (Progress, error) {
	return s.setProgress(ctx, sessionId, lessonId, ProgressCompleted)
}

func (s *Service) Progress(ctx context.Context, sessionId string) (Progress, error) {
	if _, err := s.CurrentEmail(ctx, sessionId); err != nil {
		return nil, err
	}
	return s.loadProgress(ctx, sessionId)
}

func (s *Service) setProgress(ctx context.Context, sessionId string, lessonId string, value int) (Progress, error) {
	if _, err := s.CurrentEmail(ctx, sessionId); err != nil {
		return nil, err
	}
	if _, err := FindLesson(lessonId); err != nil {
		return nil, err
	}

	progress, err := s.loadProgress(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	progress[lessonId] = value

	encoded, err := json.Marshal(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to encode progress: %w", err)
	}
	if err := s.session(sessionId).Set(ctx, progressKey, string(encoded)); err != nil {
		return nil, fmt.Errorf("failed to store progress: %w", err)
	}
	return progress, nil
}

func (s *Service) loadProgress(ctx context.Context, sessionId string) (Progress, error) {
	raw, err := s.session(sessionId).Get(ctx, progressKey)
	if errors.Is(err, kv.ErrNotFound) {
		return Progress{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}
	progress := Progress{}
	if err := json.Unmarshal([]byte(raw), &progress); err != nil {
		return nil, fmt.Errorf("failed to decode progress: %w", err)
	}
	return progress, nil
}
