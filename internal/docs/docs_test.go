package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "bounds,config,keys,output" {
		t.Fatalf("unexpected topics %q", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" Keys ")
	if !ok || !strings.HasPrefix(body, "# Keys") {
		t.Fatalf("expected keys topic, got ok=%v", ok)
	}
	for _, bad := range []string{"", "nope", "../docs"} {
		if _, ok := Get(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestRender_NoTTY(t *testing.T) {
	body, _ := Get("bounds")
	out := Render(body, "notty", 80)
	if !strings.Contains(out, "Bounds") || !strings.Contains(out, "advisory") {
		t.Fatalf("unexpected rendering %q", out)
	}
}
