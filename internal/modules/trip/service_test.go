package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripkit/internal/modules/planner"
)

// anyArgs builds n wildcard matchers for expectations where only the
// statement and call count matter.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewStore(nil), nil)

	_, err := svc.Create(context.Background(), CreateCommand{Destination: "세부"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.Create(context.Background(), CreateCommand{Name: "휴가", Destination: "  "})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.Create(context.Background(), CreateCommand{
		Name:        "휴가",
		Destination: "세부",
		StartDate:   day(2026, 7, 10),
		EndDate:     day(2026, 7, 1),
	})
	assert.ErrorIs(t, err, ErrBadRequest)
}

// When the bulk content insert fails, creation still succeeds and the trip
// gets the fixed default checklist instead.
func TestCreateFallsBackToDefaultChecklist(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO trips").
		WithArgs(pgxmock.AnyArg(), "휴가", "레이캬비크", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	// Template content insert blows up mid-batch.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO checklists").WithArgs(anyArgs(7)...).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	// Default checklist retry: eight rows, committed.
	mock.ExpectBegin()
	for i := 0; i < 8; i++ {
		mock.ExpectExec("INSERT INTO checklists").WithArgs(anyArgs(7)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	svc := NewService(NewStore(mock), nil)
	res, err := svc.Create(context.Background(), CreateCommand{
		Name:        "휴가",
		Destination: "레이캬비크",
		StartDate:   day(2026, 7, 10),
		EndDate:     day(2026, 7, 11),
	})
	require.NoError(t, err)
	assert.Equal(t, "default", res.Source)
	assert.Equal(t, 8, res.Summary.Checklists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type stubGenerator struct {
	destination string
	days        int
	start       time.Time
	content     planner.Content
}

func (g *stubGenerator) Generate(_ context.Context, destination string, days int, start time.Time) planner.Content {
	g.destination = destination
	g.days = days
	g.start = start
	return g.content
}

func TestCreateWithAIContent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO trips").WithArgs(anyArgs(6)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO checklists").WithArgs(anyArgs(7)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	gen := &stubGenerator{content: planner.Content{
		Checklists: []planner.Fields{{"title": "수영복 준비"}},
	}}

	svc := NewService(NewStore(mock), gen)
	res, err := svc.Create(context.Background(), CreateCommand{
		Name:        "세부 여행",
		Destination: "세부",
		StartDate:   day(2026, 7, 10),
		EndDate:     day(2026, 7, 13),
		UseAI:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ai", res.Source)
	assert.Equal(t, 1, res.Summary.Checklists)
	assert.Equal(t, "세부", gen.destination)
	assert.Equal(t, 4, gen.days)
	assert.Equal(t, day(2026, 7, 10), gen.start)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	svc := NewService(NewStore(mock), nil)
	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
