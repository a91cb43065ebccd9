package auth

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	ID   int
	Role string
}

func (a Actor) IsAdmin() bool    { return a.Role == domain.RoleAdmin }
func (a Actor) IsEmployee() bool { return a.Role == domain.RoleEmployee }
func (a Actor) IsCustomer() bool { return a.Role == domain.RoleCustomer }

// Key identifies the actor for rate limiting.
func (a Actor) Key() string {
	return fmt.Sprintf("%s:%d", a.Role, a.ID)
}

func validRole(role string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleEmployee, domain.RoleCustomer:
		return true
	}
	return false
}

type ContextKey string

const ActorKey ContextKey = "actor"

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ActorKey, a)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ActorKey).(Actor)
	return a, ok
}
