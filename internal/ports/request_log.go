package ports

import "context"

// AccessRequestData is one stored access request
type AccessRequestData struct {
	Name     string
	Username string
	Role     string
	Page     string
}

// RequestLog is an append-only, insertion-ordered record of access requests.
// Implementations must be safe for concurrent use.
type RequestLog interface {
	Append(ctx context.Context, req AccessRequestData) error
	List(ctx context.Context) ([]AccessRequestData, error)
}
