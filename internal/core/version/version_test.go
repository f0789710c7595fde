package version

import "testing"

func TestInfo(t *testing.T) {
	old := Service
	Service = "kudos-api"
	t.Cleanup(func() { Service = old })

	bi := Info()
	if bi.Service != "kudos-api" || bi.Version != "dev" {
		t.Fatalf("Info = %+v", bi)
	}
	if bi.Commit == "" {
		t.Fatalf("commit should never be empty")
	}
}
