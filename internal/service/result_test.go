package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athletix/club-api/internal/domain"
)

type capturingResultRepo struct {
	lastSnapshot domain.ActivityMetadata
	lastToken    string
}

func (f *capturingResultRepo) Create(_ context.Context, res domain.Result, snapshot domain.ActivityMetadata, token string) (domain.Result, error) {
	f.lastSnapshot = snapshot
	f.lastToken = token
	res.ID = 1

	return res, nil
}

func (f *capturingResultRepo) Update(_ context.Context, res domain.Result) (domain.Result, error) {
	return res, nil
}

func (f *capturingResultRepo) FindByID(_ context.Context, _ uint) (domain.Result, error) {
	return domain.Result{}, ErrResultNotFound
}

func (f *capturingResultRepo) FindByEventID(_ context.Context, _ uint) ([]domain.Result, error) {
	return nil, nil
}

type stubAthleteFinder struct {
	athlete domain.Athlete
	err     error
}

func (f *stubAthleteFinder) FindByID(_ context.Context, _ uint) (domain.Athlete, error) {
	return f.athlete, f.err
}

type stubEventFinder struct {
	event domain.Event
	err   error
}

func (f *stubEventFinder) FindByID(_ context.Context, _ uint) (domain.Event, error) {
	return f.event, f.err
}

type stubDisciplineRepo struct {
	discipline domain.Discipline
	err        error
}

func (f *stubDisciplineRepo) FindAll(_ context.Context) ([]domain.Discipline, error) {
	return []domain.Discipline{f.discipline}, nil
}

func (f *stubDisciplineRepo) FindByID(_ context.Context, _ uint) (domain.Discipline, error) {
	return f.discipline, f.err
}

func TestResultService_CreateResult_CapturesSnapshot(t *testing.T) {
	repo := &capturingResultRepo{}
	svc := NewResultService(
		repo,
		&stubAthleteFinder{athlete: domain.Athlete{ID: 3, Name: "Ama Mensah"}},
		&stubEventFinder{event: domain.Event{ID: 7, Title: "Spring Open"}},
		&stubDisciplineRepo{discipline: domain.Discipline{ID: 2, Name: "100m"}},
	)

	created, err := svc.CreateResult(context.Background(), domain.Result{
		AthleteID:    3,
		EventID:      7,
		DisciplineID: 2,
		Score:        "11.24",
	}, "d3b07384-d9a7-4f1a-8f3e-2b6a1c9d4e5f")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// The snapshot denormalizes everything the feed needs to render.
	assert.Equal(t, "Spring Open", repo.lastSnapshot.Title)
	assert.Equal(t, "Ama Mensah", repo.lastSnapshot.AthleteName)
	assert.Equal(t, "100m", repo.lastSnapshot.DisciplineName)
	assert.Equal(t, "11.24", repo.lastSnapshot.Score)
	assert.Equal(t, "d3b07384-d9a7-4f1a-8f3e-2b6a1c9d4e5f", repo.lastToken)
}

func TestResultService_CreateResult_UnknownReferences(t *testing.T) {
	tests := []struct {
		name          string
		athleteErr    error
		eventErr      error
		disciplineErr error
		wantErr       error
	}{
		{
			name:       "unknown athlete",
			athleteErr: ErrAthleteNotFound,
			wantErr:    ErrAthleteNotFound,
		},
		{
			name:     "unknown event",
			eventErr: ErrEventNotFound,
			wantErr:  ErrEventNotFound,
		},
		{
			name:          "unknown discipline",
			disciplineErr: ErrDisciplineNotFound,
			wantErr:       ErrDisciplineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewResultService(
				&capturingResultRepo{},
				&stubAthleteFinder{err: tt.athleteErr},
				&stubEventFinder{err: tt.eventErr},
				&stubDisciplineRepo{err: tt.disciplineErr},
			)

			_, err := svc.CreateResult(context.Background(), domain.Result{
				AthleteID:    1,
				EventID:      1,
				DisciplineID: 1,
				Score:        "11.24",
			}, "")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
