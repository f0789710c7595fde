package modkit

import (
	"net/http"
	"testing"

	phttp "kudoswall/internal/platform/net/http"
)

func TestBuild(t *testing.T) {
	mw := func(h http.Handler) http.Handler { return h }
	called := false
	b := Build(
		WithName("kudos"),
		WithPrefix("/kudos"),
		WithMiddlewares(mw, mw),
		WithSwagger(true),
		WithRegister(func(phttp.Router) { called = true }),
	)
	if b.Name != "kudos" || b.Prefix != "/kudos" || !b.SwaggerOn || len(b.Mw) != 2 {
		t.Fatalf("Build = %+v", b)
	}
	b.Register(nil)
	if !called {
		t.Fatalf("register hook not kept")
	}
	if Build().Register != nil {
		t.Fatalf("default register should be nil")
	}
}
