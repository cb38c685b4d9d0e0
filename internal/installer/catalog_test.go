package installer

import (
	"reflect"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(c.Hooks) != 3 {
		t.Fatalf("expected 3 hooks, got %d", len(c.Hooks))
	}
	if _, ok := c.Profiles["python"]; !ok {
		t.Error("python profile missing")
	}
	if _, ok := c.Profiles["general"]; !ok {
		t.Error("general profile missing")
	}

	for _, h := range c.Hooks {
		if h.ID == "" || h.Event == "" || h.Matcher == "" || h.Command == "" {
			t.Errorf("incomplete catalog entry: %+v", h)
		}
	}
}

func TestResolve_Profile(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	hooks, err := c.Resolve(nil, "python")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	var ids []string
	for _, h := range hooks {
		ids = append(ids, h.ID)
	}
	want := []string{"guard", "format", "lint"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

func TestResolve_UnknownProfile(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if _, err := c.Resolve(nil, "rust"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestResolve_ExplicitIDs_SkipsUnknown(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	hooks, err := c.Resolve([]string{"lint", "nonexistent"}, "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(hooks) != 1 || hooks[0].ID != "lint" {
		t.Errorf("expected just the lint hook, got %+v", hooks)
	}
}

func TestResolve_DefaultsToAll(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	hooks, err := c.Resolve(nil, "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(hooks) != 3 {
		t.Errorf("expected all 3 hooks, got %d", len(hooks))
	}
}
