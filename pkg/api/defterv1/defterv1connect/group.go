package defterv1connect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/defter/pkg/api/defterv1"
)

// GroupServiceName is the fully-qualified name of the GroupService.
const GroupServiceName = "defter.v1.GroupService"

// Procedure names, used for routing and in interceptors.
const (
	GroupServiceCreateGroupProcedure  = "/defter.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure     = "/defter.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure   = "/defter.v1.GroupService/ListGroups"
	GroupServiceUpdateGroupProcedure  = "/defter.v1.GroupService/UpdateGroup"
	GroupServiceDeleteGroupProcedure  = "/defter.v1.GroupService/DeleteGroup"
	GroupServiceAddPersonProcedure    = "/defter.v1.GroupService/AddPerson"
	GroupServiceUpdatePersonProcedure = "/defter.v1.GroupService/UpdatePerson"
	GroupServiceListPeopleProcedure   = "/defter.v1.GroupService/ListPeople"
)

// GroupServiceHandler is implemented by the server side of GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[v1.CreateGroupRequest]) (*connect.Response[v1.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[v1.GetGroupRequest]) (*connect.Response[v1.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[v1.ListGroupsRequest]) (*connect.Response[v1.ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[v1.UpdateGroupRequest]) (*connect.Response[v1.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[v1.DeleteGroupRequest]) (*connect.Response[v1.DeleteGroupResponse], error)
	AddPerson(context.Context, *connect.Request[v1.AddPersonRequest]) (*connect.Response[v1.AddPersonResponse], error)
	UpdatePerson(context.Context, *connect.Request[v1.UpdatePersonRequest]) (*connect.Response[v1.UpdatePersonResponse], error)
	ListPeople(context.Context, *connect.Request[v1.ListPeopleRequest]) (*connect.Response[v1.ListPeopleResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return "/" + GroupServiceName + "/", routes{
		GroupServiceCreateGroupProcedure:  connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opt),
		GroupServiceGetGroupProcedure:     connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opt),
		GroupServiceListGroupsProcedure:   connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opt),
		GroupServiceUpdateGroupProcedure:  connect.NewUnaryHandler(GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opt),
		GroupServiceDeleteGroupProcedure:  connect.NewUnaryHandler(GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opt),
		GroupServiceAddPersonProcedure:    connect.NewUnaryHandler(GroupServiceAddPersonProcedure, svc.AddPerson, opt),
		GroupServiceUpdatePersonProcedure: connect.NewUnaryHandler(GroupServiceUpdatePersonProcedure, svc.UpdatePerson, opt),
		GroupServiceListPeopleProcedure:   connect.NewUnaryHandler(GroupServiceListPeopleProcedure, svc.ListPeople, opt),
	}
}

// GroupServiceClient is a client for GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[v1.CreateGroupRequest]) (*connect.Response[v1.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[v1.GetGroupRequest]) (*connect.Response[v1.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[v1.ListGroupsRequest]) (*connect.Response[v1.ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[v1.UpdateGroupRequest]) (*connect.Response[v1.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[v1.DeleteGroupRequest]) (*connect.Response[v1.DeleteGroupResponse], error)
	AddPerson(context.Context, *connect.Request[v1.AddPersonRequest]) (*connect.Response[v1.AddPersonResponse], error)
	UpdatePerson(context.Context, *connect.Request[v1.UpdatePersonRequest]) (*connect.Response[v1.UpdatePersonResponse], error)
	ListPeople(context.Context, *connect.Request[v1.ListPeopleRequest]) (*connect.Response[v1.ListPeopleResponse], error)
}

// NewGroupServiceClient returns a client for the GroupService served at baseURL.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	opt := clientOptions(opts)
	return &groupServiceClient{
		createGroup:  connect.NewClient[v1.CreateGroupRequest, v1.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opt),
		getGroup:     connect.NewClient[v1.GetGroupRequest, v1.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opt),
		listGroups:   connect.NewClient[v1.ListGroupsRequest, v1.ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opt),
		updateGroup:  connect.NewClient[v1.UpdateGroupRequest, v1.UpdateGroupResponse](httpClient, baseURL+GroupServiceUpdateGroupProcedure, opt),
		deleteGroup:  connect.NewClient[v1.DeleteGroupRequest, v1.DeleteGroupResponse](httpClient, baseURL+GroupServiceDeleteGroupProcedure, opt),
		addPerson:    connect.NewClient[v1.AddPersonRequest, v1.AddPersonResponse](httpClient, baseURL+GroupServiceAddPersonProcedure, opt),
		updatePerson: connect.NewClient[v1.UpdatePersonRequest, v1.UpdatePersonResponse](httpClient, baseURL+GroupServiceUpdatePersonProcedure, opt),
		listPeople:   connect.NewClient[v1.ListPeopleRequest, v1.ListPeopleResponse](httpClient, baseURL+GroupServiceListPeopleProcedure, opt),
	}
}

type groupServiceClient struct {
	createGroup  *connect.Client[v1.CreateGroupRequest, v1.CreateGroupResponse]
	getGroup     *connect.Client[v1.GetGroupRequest, v1.GetGroupResponse]
	listGroups   *connect.Client[v1.ListGroupsRequest, v1.ListGroupsResponse]
	updateGroup  *connect.Client[v1.UpdateGroupRequest, v1.UpdateGroupResponse]
	deleteGroup  *connect.Client[v1.DeleteGroupRequest, v1.DeleteGroupResponse]
	addPerson    *connect.Client[v1.AddPersonRequest, v1.AddPersonResponse]
	updatePerson *connect.Client[v1.UpdatePersonRequest, v1.UpdatePersonResponse]
	listPeople   *connect.Client[v1.ListPeopleRequest, v1.ListPeopleResponse]
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[v1.CreateGroupRequest]) (*connect.Response[v1.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[v1.GetGroupRequest]) (*connect.Response[v1.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[v1.ListGroupsRequest]) (*connect.Response[v1.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *groupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[v1.UpdateGroupRequest]) (*connect.Response[v1.UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[v1.DeleteGroupRequest]) (*connect.Response[v1.DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) AddPerson(ctx context.Context, req *connect.Request[v1.AddPersonRequest]) (*connect.Response[v1.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *groupServiceClient) UpdatePerson(ctx context.Context, req *connect.Request[v1.UpdatePersonRequest]) (*connect.Response[v1.UpdatePersonResponse], error) {
	return c.updatePerson.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListPeople(ctx context.Context, req *connect.Request[v1.ListPeopleRequest]) (*connect.Response[v1.ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[v1.CreateGroupRequest]) (*connect.Response[v1.CreateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.CreateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[v1.GetGroupRequest]) (*connect.Response[v1.GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.GetGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) ListGroups(context.Context, *connect.Request[v1.ListGroupsRequest]) (*connect.Response[v1.ListGroupsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.ListGroups is not implemented"))
}

func (UnimplementedGroupServiceHandler) UpdateGroup(context.Context, *connect.Request[v1.UpdateGroupRequest]) (*connect.Response[v1.UpdateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.UpdateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) DeleteGroup(context.Context, *connect.Request[v1.DeleteGroupRequest]) (*connect.Response[v1.DeleteGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.DeleteGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) AddPerson(context.Context, *connect.Request[v1.AddPersonRequest]) (*connect.Response[v1.AddPersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.AddPerson is not implemented"))
}

func (UnimplementedGroupServiceHandler) UpdatePerson(context.Context, *connect.Request[v1.UpdatePersonRequest]) (*connect.Response[v1.UpdatePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.UpdatePerson is not implemented"))
}

func (UnimplementedGroupServiceHandler) ListPeople(context.Context, *connect.Request[v1.ListPeopleRequest]) (*connect.Response[v1.ListPeopleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.GroupService.ListPeople is not implemented"))
}
