package authz

import (
	"context"

	"github.com/mikededo/hubbl-sub000/internal/person"
)

func CreatedByOwnerOrWorker[T any](ctx context.Context, r person.Resolver, actor Actor, op Operation, save func(context.Context) (T, error)) (T, error) {
	return AuthorizeAndCreate(ctx, r, Request{Actor: actor, Op: op, Allowed: OwnerOrWorker}, save)
}

func CreatedByOwner[T any](ctx context.Context, r person.Resolver, actor Actor, op Operation, save func(context.Context) (T, error)) (T, error) {
	return AuthorizeAndCreate(ctx, r, Request{Actor: actor, Op: op, Allowed: OwnerOnly}, save)
}

func CreatedByClient[T any](ctx context.Context, r person.Resolver, actor Actor, op Operation, clientID int, save func(context.Context) (T, error)) (T, error) {
	return AuthorizeAndCreate(ctx, r, Request{Actor: actor, Op: op, Allowed: ClientOnly, ClientID: clientID}, save)
}

func UpdatedByOwnerOrWorker(ctx context.Context, r person.Resolver, actor Actor, op Operation, m Mutation) error {
	return AuthorizeAndUpdate(ctx, r, Request{Actor: actor, Op: op, Allowed: OwnerOrWorker}, m)
}

func UpdatedByOwner(ctx context.Context, r person.Resolver, actor Actor, op Operation, m Mutation) error {
	return AuthorizeAndUpdate(ctx, r, Request{Actor: actor, Op: op, Allowed: OwnerOnly}, m)
}

func UpdatedByClient(ctx context.Context, r person.Resolver, actor Actor, op Operation, clientID int, m Mutation) error {
	return AuthorizeAndUpdate(ctx, r, Request{Actor: actor, Op: op, Allowed: ClientOnly, ClientID: clientID}, m)
}

func DeletedByOwnerOrWorker(ctx context.Context, r person.Resolver, actor Actor, op Operation, m Mutation) error {
	return AuthorizeAndDelete(ctx, r, Request{Actor: actor, Op: op, Allowed: OwnerOrWorker}, m)
}

func DeletedByOwner(ctx context.Context, r person.Resolver, actor Actor, op Operation, m Mutation) error {
	return AuthorizeAndDelete(ctx, r, Request{Actor: actor, Op: op, Allowed: OwnerOnly}, m)
}

func DeletedByClient(ctx context.Context, r person.Resolver, actor Actor, op Operation, clientID int, m Mutation) error {
	return AuthorizeAndDelete(ctx, r, Request{Actor: actor, Op: op, Allowed: ClientOnly, ClientID: clientID}, m)
}
