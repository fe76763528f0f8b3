package registry

import (
	"testing"

	"github.com/vovakirdan/bounce/internal/config"
)

func TestRegisterLookup(t *testing.T) {
	Register(Variant{ID: "test-zz", Title: "Test", Rules: config.ClassicRules})

	if !Exists("test-zz") {
		t.Fatal("Exists() = false, expected true after Register")
	}

	v, err := Lookup("test-zz")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if v.Title != "Test" || v.Rules() != config.ClassicRules() {
		t.Errorf("Lookup() = %+v, expected registered variant", v)
	}

	if _, err := Lookup("missing"); err == nil {
		t.Error("Lookup of unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Variant{ID: "test-dup", Rules: config.ArcadeRules})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Variant{ID: "test-dup", Rules: config.ArcadeRules})
}

func TestRegisterWithoutRulesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register without rules should panic")
		}
	}()
	Register(Variant{ID: "test-norules"})
}

func TestListSorted(t *testing.T) {
	Register(Variant{ID: "test-b", Rules: config.ClassicRules})
	Register(Variant{ID: "test-a", Rules: config.ClassicRules})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
