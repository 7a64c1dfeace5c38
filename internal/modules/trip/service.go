// README: Trip service: CRUD plus starter-content generation on creation.
package trip

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripkit/internal/logger"
	"tripkit/internal/modules/planner"
	"tripkit/internal/types"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("bad request")
)

// ContentGenerator produces AI starter content for a new trip.
type ContentGenerator interface {
	Generate(ctx context.Context, destination string, days int, start time.Time) planner.Content
}

type Service struct {
	store *Store
	gen   ContentGenerator
	log   *zap.SugaredLogger
}

func NewService(store *Store, gen ContentGenerator) *Service {
	return &Service{store: store, gen: gen, log: logger.GetLogger()}
}

type CreateCommand struct {
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	UseAI       bool
}

// CreateResult reports what starter content the new trip received.
// Source is "ai", "template" or "default".
type CreateResult struct {
	Trip    *Trip
	Source  string
	Summary planner.Summary
}

// Create stores the trip and seeds its starter content. Content problems
// never fail the creation: a failed bulk insert degrades to a fixed default
// checklist, and even that failing only loses the starter content.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*CreateResult, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Destination = strings.TrimSpace(cmd.Destination)
	if cmd.Name == "" || cmd.Destination == "" {
		return nil, ErrBadRequest
	}
	if cmd.EndDate.Before(cmd.StartDate) {
		return nil, ErrBadRequest
	}

	t := &Trip{
		ID:          types.NewID(),
		Name:        cmd.Name,
		Destination: cmd.Destination,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}

	var content planner.Content
	source := "template"
	if cmd.UseAI && s.gen != nil {
		content = s.gen.Generate(ctx, t.Destination, t.Days(), t.StartDate)
		source = "ai"
	} else {
		content = planner.TemplateContent(t.Destination, t.Days())
	}

	if err := s.store.ApplyContent(ctx, t.ID, content); err != nil {
		s.log.Errorw("starter content insert failed, applying default checklist",
			"trip_id", t.ID, "source", source, "error", err)
		content = planner.DefaultContent()
		source = "default"
		if err := s.store.ApplyContent(ctx, t.ID, content); err != nil {
			s.log.Errorw("default checklist insert failed", "trip_id", t.ID, "error", err)
			content = planner.Content{}
		}
	}

	return &CreateResult{Trip: t, Source: source, Summary: content.Summarize()}, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Trip, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Trip, error) {
	return s.store.List(ctx)
}

// Progress returns completion percentages for the detail view.
func (s *Service) Progress(ctx context.Context, id types.ID) (Progress, error) {
	return s.store.Progress(ctx, id)
}

type UpdateCommand struct {
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
}

func (s *Service) Update(ctx context.Context, id types.ID, cmd UpdateCommand) (*Trip, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Destination = strings.TrimSpace(cmd.Destination)
	if cmd.Name == "" || cmd.Destination == "" {
		return nil, ErrBadRequest
	}
	if cmd.EndDate.Before(cmd.StartDate) {
		return nil, ErrBadRequest
	}

	t := &Trip{
		ID:          id,
		Name:        cmd.Name,
		Destination: cmd.Destination,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
	}
	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}
