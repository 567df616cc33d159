// Package actor carries the authenticated admin identity through a request
// context without depending on net/http.
//
// Middleware sets the value:
//
//	ctx = actor.WithID(ctx, userID)
//
// Services read it:
//
//	id, ok := actor.FromContext(ctx)
package actor

import (
	"context"
	"errors"
	"strings"
)

type actorIDKey struct{}

// ErrNoActor возвращается, когда в контексте нет аутентифицированного пользователя
var ErrNoActor = errors.New("actor: no authenticated actor in context")

// WithID stores the actor id in ctx. Blank ids are ignored.
func WithID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, actorIDKey{}, id)
}

// FromContext returns the actor id stored in ctx
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorIDKey{}).(string)
	return id, ok && id != ""
}

// ContextProvider resolves the current actor from the request context.
// It satisfies the audit recorder's identity collaborator.
type ContextProvider struct{}

// CurrentActor returns the actor id or ErrNoActor
func (ContextProvider) CurrentActor(ctx context.Context) (string, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return "", ErrNoActor
	}
	return id, nil
}
