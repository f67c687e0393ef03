package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/defter/internal/middleware"
	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
)

// callerID returns the authenticated user's ID.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errUnauthorized)
	}
	return userID, nil
}

// membership returns the person the caller acts as inside groupID.
// Callers without a linked person get PermissionDenied.
func membership(ctx context.Context, store storage.Store, groupID string) (*models.Person, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := store.GetGroup(ctx, groupID); err != nil {
		return nil, storeError(err, "group")
	}

	person, err := store.PersonForUser(ctx, groupID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotMember)
	}
	if err != nil {
		return nil, storeError(err, "person")
	}
	return person, nil
}

// peopleByID indexes a group's people.
func peopleByID(people []*models.Person) map[string]*models.Person {
	byID := make(map[string]*models.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	return byID
}

func namesByID(people []*models.Person) map[string]string {
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}
	return names
}
