package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/defter/internal/models"
	"github.com/mmynk/defter/internal/storage"
	v1 "github.com/mmynk/defter/pkg/api/defterv1"
	"github.com/mmynk/defter/pkg/api/defterv1/defterv1connect"
)

var (
	errNotCreator    = errors.New("only the group's creator can delete it")
	errAlreadyLinked = errors.New("user is already a member of this group")
)

// GroupService implements the Connect GroupService
type GroupService struct {
	defterv1connect.UnimplementedGroupServiceHandler
	store  storage.Store
	logger *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, logger *slog.Logger) *GroupService {
	return &GroupService{store: store, logger: logger}
}

// CreateGroup creates a new group with the caller as its first person.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[v1.CreateGroupRequest]) (*connect.Response[v1.CreateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateGroup request received", "name", req.Msg.Name, "user_id", userID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}

	personName := strings.TrimSpace(req.Msg.PersonName)
	if personName == "" {
		user, err := s.store.GetUserByID(ctx, userID)
		if err != nil {
			s.logger.Error("CreateGroup failed", "error", err)
			return nil, storeError(err, "user")
		}
		personName = user.DisplayName
	}

	group := &models.Group{
		Name:      strings.TrimSpace(req.Msg.Name),
		CreatedBy: userID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.Error("CreateGroup failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	me := &models.Person{
		GroupID: group.ID,
		Name:    personName,
		UserID:  userID,
		Active:  true,
	}
	if err := s.store.AddPerson(ctx, me); err != nil {
		s.logger.Error("CreateGroup failed", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&v1.CreateGroupResponse{
		Group: groupToAPI(group),
		Me:    personToAPI(me),
	}), nil
}

// GetGroup retrieves a group and its people.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[v1.GetGroupRequest]) (*connect.Response[v1.GetGroupResponse], error) {
	s.logger.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	if _, err := membership(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, storeError(err, "group")
	}
	people, err := s.store.ListPeople(ctx, group.ID)
	if err != nil {
		s.logger.Error("GetGroup failed", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&v1.GetGroupResponse{
		Group:  groupToAPI(group),
		People: peopleToAPI(people),
	}), nil
}

// ListGroups returns every group the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[v1.ListGroupsRequest]) (*connect.Response[v1.ListGroupsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ListGroups request received", "user_id", userID)

	groups, err := s.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListGroups failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*v1.Group, len(groups))
	for i, g := range groups {
		out[i] = groupToAPI(g)
	}
	return connect.NewResponse(&v1.ListGroupsResponse{Groups: out}), nil
}

// UpdateGroup renames a group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[v1.UpdateGroupRequest]) (*connect.Response[v1.UpdateGroupResponse], error) {
	s.logger.Info("UpdateGroup request received", "group_id", req.Msg.GroupID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	if _, err := membership(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, storeError(err, "group")
	}
	group.Name = strings.TrimSpace(req.Msg.Name)

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		s.logger.Error("UpdateGroup failed", "group_id", group.ID, "error", err)
		return nil, storeError(err, "group")
	}

	return connect.NewResponse(&v1.UpdateGroupResponse{Group: groupToAPI(group)}), nil
}

// DeleteGroup removes a group with its whole history. Only the creator may
// delete a group.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[v1.DeleteGroupRequest]) (*connect.Response[v1.DeleteGroupResponse], error) {
	s.logger.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, storeError(err, "group")
	}
	if group.CreatedBy != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotCreator)
	}

	if err := s.store.DeleteGroup(ctx, group.ID); err != nil {
		s.logger.Error("DeleteGroup failed", "group_id", group.ID, "error", err)
		return nil, storeError(err, "group")
	}

	s.logger.Info("Group deleted", "group_id", group.ID)
	return connect.NewResponse(&v1.DeleteGroupResponse{}), nil
}

// AddPerson adds a participant to a group, optionally linked to an account.
func (s *GroupService) AddPerson(ctx context.Context, req *connect.Request[v1.AddPersonRequest]) (*connect.Response[v1.AddPersonResponse], error) {
	s.logger.Info("AddPerson request received", "group_id", req.Msg.GroupID, "name", req.Msg.Name)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	if _, err := membership(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	person := &models.Person{
		GroupID: req.Msg.GroupID,
		Name:    strings.TrimSpace(req.Msg.Name),
		Active:  true,
	}

	if req.Msg.UserEmail != "" {
		user, err := s.store.GetUserByEmail(ctx, req.Msg.UserEmail)
		if err != nil {
			return nil, storeError(err, "user")
		}
		_, err = s.store.PersonForUser(ctx, req.Msg.GroupID, user.ID)
		if err == nil {
			return nil, connect.NewError(connect.CodeAlreadyExists, errAlreadyLinked)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, storeError(err, "person")
		}
		person.UserID = user.ID
	}

	if err := s.store.AddPerson(ctx, person); err != nil {
		s.logger.Error("AddPerson failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&v1.AddPersonResponse{Person: personToAPI(person)}), nil
}

// UpdatePerson renames a person or changes whether they are active.
func (s *GroupService) UpdatePerson(ctx context.Context, req *connect.Request[v1.UpdatePersonRequest]) (*connect.Response[v1.UpdatePersonResponse], error) {
	s.logger.Info("UpdatePerson request received", "person_id", req.Msg.PersonID)

	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}

	person, err := s.store.GetPerson(ctx, req.Msg.PersonID)
	if err != nil {
		return nil, storeError(err, "person")
	}
	if _, err := membership(ctx, s.store, person.GroupID); err != nil {
		return nil, err
	}

	if req.Msg.Name != nil {
		name := strings.TrimSpace(*req.Msg.Name)
		if name == "" {
			v := violations{}
			v.add("name", "must not be blank")
			return nil, v.err()
		}
		person.Name = name
	}
	if req.Msg.Active != nil {
		person.Active = *req.Msg.Active
	}

	if err := s.store.UpdatePerson(ctx, person); err != nil {
		s.logger.Error("UpdatePerson failed", "person_id", person.ID, "error", err)
		return nil, storeError(err, "person")
	}

	return connect.NewResponse(&v1.UpdatePersonResponse{Person: personToAPI(person)}), nil
}

// ListPeople returns a group's people in the order they joined.
func (s *GroupService) ListPeople(ctx context.Context, req *connect.Request[v1.ListPeopleRequest]) (*connect.Response[v1.ListPeopleResponse], error) {
	if err := validateMessage(req.Msg); err != nil {
		return nil, err
	}
	if _, err := membership(ctx, s.store, req.Msg.GroupID); err != nil {
		return nil, err
	}

	people, err := s.store.ListPeople(ctx, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("ListPeople failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&v1.ListPeopleResponse{People: peopleToAPI(people)}), nil
}
