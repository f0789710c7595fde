package repokit

import (
	"context"
	"errors"
	"testing"

	kit "kudoswall/internal/platform/testkit"
)

type namedRepo struct{ q Queryer }

func TestMustBind(t *testing.T) {
	b := BindFunc[namedRepo](func(q Queryer) namedRepo { return namedRepo{q: q} })
	kit.MustPanic(t, func() { _ = MustBind[namedRepo](b, nil) })
}

type pingFn func(context.Context) error

func (f pingFn) Ping(ctx context.Context) error { return f(ctx) }

func TestMustPing(t *testing.T) {
	kit.MustNotPanic(t, func() {
		MustPing(context.Background(), "pg", pingFn(func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("expected a deadline")
			}
			return nil
		}))
	})
	kit.MustPanic(t, func() {
		MustPing(context.Background(), "pg", pingFn(func(context.Context) error { return errors.New("down") }))
	})
	kit.MustPanic(t, func() { MustPing(context.Background(), "pg", nil) })
}
