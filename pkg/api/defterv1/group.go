package defterv1

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	// PersonName is how the creator appears in the group. Defaults to the
	// creator's display name.
	PersonName string `json:"person_name,omitempty" validate:"max=100"`
}

type CreateGroupResponse struct {
	Group *Group  `json:"group"`
	Me    *Person `json:"me"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type GetGroupResponse struct {
	Group  *Group    `json:"group"`
	People []*Person `json:"people"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type UpdateGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=100"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type DeleteGroupResponse struct{}

type AddPersonRequest struct {
	GroupID string `json:"group_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=100"`
	// UserEmail links the new person to an existing account.
	UserEmail string `json:"user_email,omitempty" validate:"omitempty,email"`
}

type AddPersonResponse struct {
	Person *Person `json:"person"`
}

// UpdatePersonRequest changes only the fields that are set.
type UpdatePersonRequest struct {
	PersonID string  `json:"person_id" validate:"required"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Active   *bool   `json:"active,omitempty"`
}

type UpdatePersonResponse struct {
	Person *Person `json:"person"`
}

type ListPeopleRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type ListPeopleResponse struct {
	People []*Person `json:"people"`
}
