// Package authz decides whether the acting principal may run a mutation and
// then runs it. Every create, update and delete of the API goes through one
// of the entry points below.
package authz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/logger"
	"github.com/mikededo/hubbl-sub000/internal/metrics"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

const MessageNotEnoughPermissions = "Worker does not have enough permissions."

var ErrPermissionNotConfigured = errors.New("operation has no worker permission configured")

var (
	OwnerOrWorker = []auth.Role{auth.RoleOwner, auth.RoleWorker}
	OwnerOnly     = []auth.Role{auth.RoleOwner}
	ClientOnly    = []auth.Role{auth.RoleClient}
)

type Actor struct {
	PersonID int
	Role     auth.Role
}

func ActorOf(p auth.Principal) Actor {
	return Actor{PersonID: p.PersonID, Role: p.Role}
}

// Operation describes the mutation for messages, logs and the worker
// permission it requires.
type Operation struct {
	Controller string
	Action     string
	Entity     string
	Permission person.Permission
}

func (op Operation) notFound() string {
	entity := op.Entity
	if entity != "" {
		entity = strings.ToUpper(entity[:1]) + entity[1:]
	}
	return fmt.Sprintf("%s to %s not found.", entity, op.Action)
}

// Request is what the kernel authorizes. ClientID is the client owning the
// target row and is only read when the actor is a client.
type Request struct {
	Actor    Actor
	Op       Operation
	Allowed  []auth.Role
	ClientID int
}

// Mutation is an update or a delete: Count checks the target exists and
// Apply changes it.
type Mutation struct {
	Count func(ctx context.Context) (int, error)
	Apply func(ctx context.Context) error
}

func allowedSet(roles []auth.Role) string {
	quoted := make([]string, 0, len(roles))
	for _, r := range roles {
		quoted = append(quoted, "'"+string(r)+"'")
	}
	return strings.Join(quoted, ", ")
}

func deny(req Request, message string) error {
	metrics.RecordAuthorizationDenial(req.Op.Entity, req.Op.Action, string(req.Actor.Role))
	return apperr.Unauthorized(message)
}

// fail logs err once and hides it behind the generic message. Errors that
// are already classified as something other than internal pass through.
func fail(op Operation, err error) error {
	var e *apperr.Error
	if errors.As(err, &e) && e.Kind != apperr.KindInternal {
		return e
	}

	logger.Error("mutation failed",
		"controller", op.Controller,
		"operation", op.Action,
		"error", err.Error(),
	)
	metrics.RecordMutationFailure(op.Controller, op.Action)
	return apperr.InternalLogged(err)
}

func authorize(ctx context.Context, r person.Resolver, req Request) error {
	allowed := false
	for _, role := range req.Allowed {
		if role == req.Actor.Role {
			allowed = true
			break
		}
	}
	if !allowed {
		return deny(req, fmt.Sprintf("Ensure to pass the [by] parameter. Valid values are %s.", allowedSet(req.Allowed)))
	}

	switch req.Actor.Role {
	case auth.RoleWorker:
		if req.Op.Permission == person.PermissionNone {
			return fail(req.Op, ErrPermissionNotConfigured)
		}
		w, err := r.FindWorker(ctx, req.Actor.PersonID)
		if err != nil {
			return fail(req.Op, err)
		}
		if w == nil {
			return deny(req, fmt.Sprintf("Worker does not exist. Can not %s the %s.", req.Op.Action, req.Op.Entity))
		}
		if !w.Can(req.Op.Permission) {
			return deny(req, MessageNotEnoughPermissions)
		}

	case auth.RoleOwner:
		ok, err := r.OwnerExists(ctx, req.Actor.PersonID)
		if err != nil {
			return fail(req.Op, err)
		}
		if !ok {
			return deny(req, fmt.Sprintf("Owner does not exist. Can not %s the %s.", req.Op.Action, req.Op.Entity))
		}

	case auth.RoleClient:
		if req.ClientID != req.Actor.PersonID {
			return deny(req, "")
		}
	}

	return nil
}

// AuthorizeAndCreate runs save once the actor is authorized.
func AuthorizeAndCreate[T any](ctx context.Context, r person.Resolver, req Request, save func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := authorize(ctx, r, req); err != nil {
		return zero, err
	}

	out, err := save(ctx)
	if err != nil {
		return zero, fail(req.Op, err)
	}
	return out, nil
}

// AuthorizeAndUpdate checks the target still exists before applying m.
func AuthorizeAndUpdate(ctx context.Context, r person.Resolver, req Request, m Mutation) error {
	return mutate(ctx, r, req, m)
}

func AuthorizeAndDelete(ctx context.Context, r person.Resolver, req Request, m Mutation) error {
	return mutate(ctx, r, req, m)
}

func mutate(ctx context.Context, r person.Resolver, req Request, m Mutation) error {
	if err := authorize(ctx, r, req); err != nil {
		return err
	}

	if m.Count != nil {
		count, err := m.Count(ctx)
		if err != nil {
			return fail(req.Op, err)
		}
		if count == 0 {
			return apperr.NotFound(req.Op.notFound())
		}
	}

	if err := m.Apply(ctx); err != nil {
		return fail(req.Op, err)
	}
	return nil
}
