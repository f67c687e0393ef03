package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/defter/internal/models"
)

const personColumns = "id, group_id, name, user_id, active, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	person := &models.Person{}
	var userID sql.NullString
	if err := row.Scan(&person.ID, &person.GroupID, &person.Name, &userID, &person.Active, &person.CreatedAt); err != nil {
		return nil, err
	}
	person.UserID = userID.String
	return person, nil
}

// AddPerson inserts a new person into a group.
func (s *SQLiteStore) AddPerson(ctx context.Context, person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO people ("+personColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		person.ID, person.GroupID, person.Name, nullString(person.UserID), person.Active, person.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}
	return nil
}

// GetPerson retrieves a person by ID.
func (s *SQLiteStore) GetPerson(ctx context.Context, personID string) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+personColumns+" FROM people WHERE id = ?", personID)
	person, err := scanPerson(row)
	if err != nil {
		return nil, notFound(err, "person", personID)
	}
	return person, nil
}

// ListPeople retrieves a group's people in insertion order.
func (s *SQLiteStore) ListPeople(ctx context.Context, groupID string) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+personColumns+" FROM people WHERE group_id = ? ORDER BY rowid",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}

// UpdatePerson changes a person's name, linked user and active flag.
func (s *SQLiteStore) UpdatePerson(ctx context.Context, person *models.Person) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE people SET name = ?, user_id = ?, active = ? WHERE id = ?",
		person.Name, nullString(person.UserID), person.Active, person.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	return requireAffected(res, "person", person.ID)
}

// PersonForUser finds the person linked to userID inside groupID.
func (s *SQLiteStore) PersonForUser(ctx context.Context, groupID, userID string) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+personColumns+" FROM people WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	)
	person, err := scanPerson(row)
	if err != nil {
		return nil, notFound(err, "person for user", userID)
	}
	return person, nil
}
