package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/mmynk/defter/pkg/api/defterv1"
)

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t, testOptions())
	alice := env.user("alice")
	ctx := context.Background()

	resp, err := env.as(alice).groups.CreateGroup(ctx, connect.NewRequest(&v1.CreateGroupRequest{
		Name: "  Roommates ",
	}))
	require.NoError(t, err)

	group := resp.Msg.Group
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "Roommates", group.Name)
	assert.Equal(t, alice.ID, group.CreatedBy)
	assert.NotZero(t, group.CreatedAt)

	// The creator joins under their display name.
	me := resp.Msg.Me
	assert.Equal(t, "alice", me.Name)
	assert.Equal(t, alice.ID, me.UserID)
	assert.True(t, me.Active)
}

func TestCreateGroupValidation(t *testing.T) {
	env := setupTestServer(t, testOptions())
	alice := env.user("alice")

	_, err := env.as(alice).groups.CreateGroup(context.Background(), connect.NewRequest(&v1.CreateGroupRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, codeOf(t, err))
	assert.Contains(t, ViolationsFromError(err), "name")
}

func TestGroupRequiresAuthentication(t *testing.T) {
	env := setupTestServer(t, testOptions())

	_, err := env.anonymous().groups.ListGroups(context.Background(), connect.NewRequest(&v1.ListGroupsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, codeOf(t, err))
}

func TestGetGroup(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	resp, err := f.asBob.groups.GetGroup(ctx, connect.NewRequest(&v1.GetGroupRequest{GroupID: f.groupID}))
	require.NoError(t, err)

	assert.Equal(t, "Flat", resp.Msg.Group.Name)
	require.Len(t, resp.Msg.People, 3)
	assert.Equal(t, "Alice", resp.Msg.People[0].Name)
	assert.Equal(t, "Bob", resp.Msg.People[1].Name)
	assert.Equal(t, f.bobUser.ID, resp.Msg.People[1].UserID)
	assert.Equal(t, "Carol", resp.Msg.People[2].Name)
	assert.Empty(t, resp.Msg.People[2].UserID)
}

func TestGetGroupAccess(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	outsider := env.as(env.user("mallory"))
	ctx := context.Background()

	_, err := outsider.groups.GetGroup(ctx, connect.NewRequest(&v1.GetGroupRequest{GroupID: f.groupID}))
	assert.Equal(t, connect.CodePermissionDenied, codeOf(t, err))

	_, err = f.asAlice.groups.GetGroup(ctx, connect.NewRequest(&v1.GetGroupRequest{GroupID: "nonexistent"}))
	assert.Equal(t, connect.CodeNotFound, codeOf(t, err))
}

func TestListGroups(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	_, err := f.asAlice.groups.CreateGroup(ctx, connect.NewRequest(&v1.CreateGroupRequest{Name: "Trip"}))
	require.NoError(t, err)

	aliceGroups, err := f.asAlice.groups.ListGroups(ctx, connect.NewRequest(&v1.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Len(t, aliceGroups.Msg.Groups, 2)

	bobGroups, err := f.asBob.groups.ListGroups(ctx, connect.NewRequest(&v1.ListGroupsRequest{}))
	require.NoError(t, err)
	require.Len(t, bobGroups.Msg.Groups, 1)
	assert.Equal(t, f.groupID, bobGroups.Msg.Groups[0].ID)
}

func TestUpdateGroup(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()

	resp, err := f.asBob.groups.UpdateGroup(context.Background(), connect.NewRequest(&v1.UpdateGroupRequest{
		GroupID: f.groupID,
		Name:    "Flat 3B",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Flat 3B", resp.Msg.Group.Name)
}

func TestDeleteGroup(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	_, err := f.asBob.groups.DeleteGroup(ctx, connect.NewRequest(&v1.DeleteGroupRequest{GroupID: f.groupID}))
	assert.Equal(t, connect.CodePermissionDenied, codeOf(t, err))

	_, err = f.asAlice.groups.DeleteGroup(ctx, connect.NewRequest(&v1.DeleteGroupRequest{GroupID: f.groupID}))
	require.NoError(t, err)

	_, err = f.asAlice.groups.GetGroup(ctx, connect.NewRequest(&v1.GetGroupRequest{GroupID: f.groupID}))
	assert.Equal(t, connect.CodeNotFound, codeOf(t, err))
}

func TestAddPerson(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.asAlice.groups.AddPerson(ctx, connect.NewRequest(&v1.AddPersonRequest{
			GroupID:   f.groupID,
			Name:      "Dave",
			UserEmail: "dave@example.com",
		}))
		assert.Equal(t, connect.CodeNotFound, codeOf(t, err))
	})

	t.Run("user already linked", func(t *testing.T) {
		_, err := f.asAlice.groups.AddPerson(ctx, connect.NewRequest(&v1.AddPersonRequest{
			GroupID:   f.groupID,
			Name:      "Bob again",
			UserEmail: "BOB@example.com",
		}))
		assert.Equal(t, connect.CodeAlreadyExists, codeOf(t, err))
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := f.asAlice.groups.AddPerson(ctx, connect.NewRequest(&v1.AddPersonRequest{
			GroupID:   f.groupID,
			Name:      "Dave",
			UserEmail: "not-an-email",
		}))
		assert.Equal(t, connect.CodeInvalidArgument, codeOf(t, err))
		assert.Contains(t, ViolationsFromError(err), "user_email")
	})
}

func TestUpdatePerson(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()
	ctx := context.Background()

	name := "Caroline"
	inactive := false
	resp, err := f.asBob.groups.UpdatePerson(ctx, connect.NewRequest(&v1.UpdatePersonRequest{
		PersonID: f.carol.ID,
		Name:     &name,
		Active:   &inactive,
	}))
	require.NoError(t, err)
	assert.Equal(t, "Caroline", resp.Msg.Person.Name)
	assert.False(t, resp.Msg.Person.Active)

	// Unset fields are left alone.
	active := true
	resp, err = f.asBob.groups.UpdatePerson(ctx, connect.NewRequest(&v1.UpdatePersonRequest{
		PersonID: f.carol.ID,
		Active:   &active,
	}))
	require.NoError(t, err)
	assert.Equal(t, "Caroline", resp.Msg.Person.Name)
	assert.True(t, resp.Msg.Person.Active)

	blank := "   "
	_, err = f.asBob.groups.UpdatePerson(ctx, connect.NewRequest(&v1.UpdatePersonRequest{
		PersonID: f.carol.ID,
		Name:     &blank,
	}))
	assert.Equal(t, connect.CodeInvalidArgument, codeOf(t, err))
}

func TestListPeople(t *testing.T) {
	env := setupTestServer(t, testOptions())
	f := env.flat()

	resp, err := f.asAlice.groups.ListPeople(context.Background(), connect.NewRequest(&v1.ListPeopleRequest{GroupID: f.groupID}))
	require.NoError(t, err)

	ids := make([]string, len(resp.Msg.People))
	for i, p := range resp.Msg.People {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{f.alice.ID, f.bob.ID, f.carol.ID}, ids)
}
