package personnel

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const personColumns = `
    id, COALESCE(team_id::text, ''), name, COALESCE(email, ''), person_type,
    COALESCE(monthly_salary, 0), COALESCE(event_cache, 0), COALESCE(overtime_rate, 0),
    overtime_threshold_hours, convert_overtime_to_daily, active, created_at`

func scanPerson(row interface{ Scan(...any) error }) (Person, error) {
	var person Person
	err := row.Scan(&person.ID, &person.TeamID, &person.Name, &person.Email, &person.Type,
		&person.MonthlySalary, &person.EventCache, &person.OvertimeRate,
		&person.OvertimeThreshold, &person.ConvertOvertimeDaily, &person.Active, &person.CreatedAt)
	return person, err
}

func (s *Store) ListPeople(ctx context.Context, tenantID string, limit, offset int) ([]Person, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+personColumns+`
    FROM personnel
    WHERE tenant_id = $1
    ORDER BY name
    LIMIT $2 OFFSET $3
  `, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}
	return people, nil
}

func (s *Store) GetPerson(ctx context.Context, tenantID, personID string) (Person, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+personColumns+`
    FROM personnel
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, personID)
	return scanPerson(row)
}

func (s *Store) PeopleByIDs(ctx context.Context, tenantID string, ids []string) (map[string]Person, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+personColumns+`
    FROM personnel
    WHERE tenant_id = $1 AND id = ANY($2)
  `, tenantID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]Person, len(ids))
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out[person.ID] = person
	}
	return out, nil
}

func (s *Store) CreatePerson(ctx context.Context, tenantID string, person Person) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO personnel (tenant_id, team_id, name, email, person_type, monthly_salary,
                           event_cache, overtime_rate, overtime_threshold_hours,
                           convert_overtime_to_daily, active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id
  `, tenantID, nullIfEmpty(person.TeamID), person.Name, person.Email, person.Type,
		person.MonthlySalary, person.EventCache, person.OvertimeRate,
		person.OvertimeThreshold, person.ConvertOvertimeDaily, person.Active).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateOvertimeConfig(ctx context.Context, tenantID, personID string, threshold *float64, convert *bool, overtimeRate float64) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE personnel
    SET overtime_threshold_hours = $1, convert_overtime_to_daily = $2, overtime_rate = $3
    WHERE tenant_id = $4 AND id = $5
  `, threshold, convert, overtimeRate, tenantID, personID)
	return err
}

func (s *Store) GetTeam(ctx context.Context, tenantID, teamID string) (Team, error) {
	var team Team
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, default_overtime_threshold_hours, default_convert_overtime_to_daily, created_at
    FROM teams
    WHERE tenant_id = $1 AND id = $2
  `, tenantID, teamID).Scan(&team.ID, &team.Name, &team.DefaultOvertimeThreshold, &team.DefaultConvertToDaily, &team.CreatedAt)
	return team, err
}

func (s *Store) ListTeams(ctx context.Context, tenantID string) ([]Team, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, default_overtime_threshold_hours, default_convert_overtime_to_daily, created_at
    FROM teams
    WHERE tenant_id = $1
    ORDER BY name
  `, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var team Team
		if err := rows.Scan(&team.ID, &team.Name, &team.DefaultOvertimeThreshold, &team.DefaultConvertToDaily, &team.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (s *Store) CreateTeam(ctx context.Context, tenantID string, team Team) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO teams (tenant_id, name, default_overtime_threshold_hours, default_convert_overtime_to_daily)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, tenantID, team.Name, team.DefaultOvertimeThreshold, team.DefaultConvertToDaily).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateTeamDefaults(ctx context.Context, tenantID, teamID string, threshold *float64, convert *bool) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE teams
    SET default_overtime_threshold_hours = $1, default_convert_overtime_to_daily = $2
    WHERE tenant_id = $3 AND id = $4
  `, threshold, convert, tenantID, teamID)
	return err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
