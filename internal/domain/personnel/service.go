package personnel

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidPersonType = errors.New("person type must be fixed or freelancer")
	ErrPersonNotFound    = errors.New("person not found")
	ErrTeamNotFound      = errors.New("team not found")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListPeople(ctx context.Context, tenantID string, limit, offset int) ([]Person, error) {
	return s.store.ListPeople(ctx, tenantID, limit, offset)
}

func (s *Service) GetPerson(ctx context.Context, tenantID, personID string) (Person, error) {
	person, err := s.store.GetPerson(ctx, tenantID, personID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Person{}, ErrPersonNotFound
	}
	return person, err
}

func (s *Service) PeopleByIDs(ctx context.Context, tenantID string, ids []string) (map[string]Person, error) {
	if len(ids) == 0 {
		return map[string]Person{}, nil
	}
	return s.store.PeopleByIDs(ctx, tenantID, ids)
}

func (s *Service) CreatePerson(ctx context.Context, tenantID string, person Person) (string, error) {
	if person.Type != TypeFixed && person.Type != TypeFreelancer {
		return "", ErrInvalidPersonType
	}
	return s.store.CreatePerson(ctx, tenantID, person)
}

func (s *Service) UpdateOvertimeConfig(ctx context.Context, tenantID, personID string, threshold *float64, convert *bool, overtimeRate float64) error {
	if overtimeRate < 0 {
		overtimeRate = 0
	}
	return s.store.UpdateOvertimeConfig(ctx, tenantID, personID, threshold, convert, overtimeRate)
}

func (s *Service) GetTeam(ctx context.Context, tenantID, teamID string) (Team, error) {
	team, err := s.store.GetTeam(ctx, tenantID, teamID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Team{}, ErrTeamNotFound
	}
	return team, err
}

func (s *Service) ListTeams(ctx context.Context, tenantID string) ([]Team, error) {
	return s.store.ListTeams(ctx, tenantID)
}

func (s *Service) CreateTeam(ctx context.Context, tenantID string, team Team) (string, error) {
	return s.store.CreateTeam(ctx, tenantID, team)
}

func (s *Service) UpdateTeamDefaults(ctx context.Context, tenantID, teamID string, threshold *float64, convert *bool) error {
	return s.store.UpdateTeamDefaults(ctx, tenantID, teamID, threshold, convert)
}
