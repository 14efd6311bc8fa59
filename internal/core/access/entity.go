package access

import (
	"toolkitaccess.app/internal/ports"
	"toolkitaccess.app/pkg/errors"
	"toolkitaccess.app/pkg/validation"
)

const (
	// DefaultRole is stored when the submission carries no role
	DefaultRole = "Unknown"
	// DefaultPage is stored when the submission carries no originating page
	DefaultPage = "Unknown"

	MsgRequiredFields = "Name and GitHub username are required"
)

// AccessRequest is a validated request for collaborator access
type AccessRequest struct {
	Name     string
	Username string
	Role     string
	Page     string
}

// NewAccessRequest trims all fields, applies defaults and enforces that
// name and username are present.
func NewAccessRequest(name, username, role, page string) (*AccessRequest, error) {
	trimmedName, nameOK := validation.TrimAndValidate(name)
	trimmedUsername, usernameOK := validation.TrimAndValidate(username)
	if !nameOK || !usernameOK {
		return nil, errors.NewValidationError(MsgRequiredFields)
	}

	return &AccessRequest{
		Name:     trimmedName,
		Username: trimmedUsername,
		Role:     validation.TrimOrDefault(role, DefaultRole),
		Page:     validation.TrimOrDefault(page, DefaultPage),
	}, nil
}

// ToData converts the entity into its storage representation
func (r *AccessRequest) ToData() ports.AccessRequestData {
	return ports.AccessRequestData{
		Name:     r.Name,
		Username: r.Username,
		Role:     r.Role,
		Page:     r.Page,
	}
}

// FromData builds an entity from its storage representation
func FromData(d ports.AccessRequestData) AccessRequest {
	return AccessRequest{
		Name:     d.Name,
		Username: d.Username,
		Role:     d.Role,
		Page:     d.Page,
	}
}

// SubmitParams carries a raw form submission. Identifier is accepted as an
// alias for Username; Username wins when both are set.
type SubmitParams struct {
	Name       string
	Username   string
	Identifier string
	Role       string
	Page       string
}

// ResolvedUsername returns the username, falling back to the identifier alias
func (p SubmitParams) ResolvedUsername() string {
	return validation.FirstNonEmpty(p.Username, p.Identifier)
}

// SubmitResult is returned for every submission that passed validation
type SubmitResult struct {
	Success   bool
	Message   string
	EmailSent bool
}

// RequestList is the full request log in insertion order
type RequestList struct {
	Requests []AccessRequest
	Count    int
}
