package extract_test

import (
	"testing"

	"github.com/unbound-force/decoy/internal/extract"
	"github.com/unbound-force/decoy/internal/member"
)

func TestLoad_ValidPackage(t *testing.T) {
	// Load the extract package itself (it's a valid Go package).
	result, err := extract.Load("github.com/unbound-force/decoy/internal/extract")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if result.Pkg == nil {
		t.Fatal("expected non-nil Pkg")
	}
	if result.Fset == nil {
		t.Fatal("expected non-nil Fset")
	}
}

func TestLoad_InvalidPattern(t *testing.T) {
	_, err := extract.Load("github.com/nonexistent/package/that/does/not/exist")
	if err == nil {
		t.Error("expected error for nonexistent package")
	}
}

func loadFixture(t *testing.T) *extract.Result {
	t.Helper()
	result, err := extract.Load("./testdata/contracts")
	if err != nil {
		t.Fatalf("loading fixture package: %v", err)
	}
	return result
}

func TestMembers_CollectsExportedInterfaces(t *testing.T) {
	set := extract.Members(loadFixture(t), nil)

	var names []string
	for _, c := range set.Contracts {
		names = append(names, c.Name)
	}
	want := []string{"Codec", "Store"}
	if len(names) != len(want) {
		t.Fatalf("contracts = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("contract %d = %q, want %q (sorted)", i, names[i], want[i])
		}
	}
}

func TestMembers_MethodShapes(t *testing.T) {
	set := extract.Members(loadFixture(t), nil)

	byName := make(map[string]member.Signature)
	for _, m := range set.Members {
		if m.Contract.Name == "Store" {
			byName[m.Name] = m
		}
	}

	get, ok := byName["Get"]
	if !ok {
		t.Fatal("Store.Get not extracted")
	}
	if get.Kind != member.KindMethod {
		t.Errorf("Get kind = %q, want method", get.Kind)
	}
	if len(get.Params) != 2 {
		t.Fatalf("Get params = %v, want 2", get.Params)
	}
	if get.Params[0] != "context.Context" || get.Params[1] != "string" {
		t.Errorf("Get params = %v", get.Params)
	}
	if get.Returns != "(string, error)" {
		t.Errorf("Get returns = %q, want (string, error)", get.Returns)
	}

	cl, ok := byName["Close"]
	if !ok {
		t.Fatal("Store.Close not extracted")
	}
	if cl.Returns != member.NoValue {
		t.Errorf("Close returns = %q, want no value", cl.Returns)
	}
	if len(cl.Params) != 0 {
		t.Errorf("Close params = %v, want none", cl.Params)
	}
}

func TestMembers_GenericArity(t *testing.T) {
	set := extract.Members(loadFixture(t), nil)

	for _, m := range set.Members {
		if m.Contract.Name != "Codec" {
			continue
		}
		if m.TypeParams != 1 {
			t.Errorf("%s.TypeParams = %d, want 1", m.Name, m.TypeParams)
		}
	}
}

func TestMembers_Selector(t *testing.T) {
	set := extract.Members(loadFixture(t), func(name string) bool {
		return name == "Store"
	})

	if len(set.Contracts) != 1 || set.Contracts[0].Name != "Store" {
		t.Fatalf("contracts = %v, want [Store]", set.Contracts)
	}
	for _, m := range set.Members {
		if m.Contract.Name != "Store" {
			t.Errorf("member %s leaked from unselected contract %s",
				m.Name, m.Contract.Name)
		}
	}
}

func TestMembers_SkipsUnexportedAndNonInterfaces(t *testing.T) {
	set := extract.Members(loadFixture(t), nil)

	for _, c := range set.Contracts {
		if c.Name == "notExported" || c.Name == "Plain" {
			t.Errorf("contract %q should not be extracted", c.Name)
		}
	}
}
