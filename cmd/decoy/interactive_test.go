package main

import (
	"strings"
	"testing"

	"github.com/unbound-force/decoy/internal/report"
)

// TestRenderResolveContent_Empty verifies that an empty view produces
// output indicating zero identities and zero conflicts.
func TestRenderResolveContent_Empty(t *testing.T) {
	v := report.View{Package: "example.com/pkg"}
	output := renderResolveContent(v, report.DefaultStyles())

	if !strings.Contains(output, "0 identit(ies)") {
		t.Errorf("expected output to contain '0 identit(ies)', got:\n%s", output)
	}
	if !strings.Contains(output, "0 conflict(s)") {
		t.Errorf("expected output to contain '0 conflict(s)', got:\n%s", output)
	}
	if !strings.Contains(output, "example.com/pkg") {
		t.Errorf("expected output to contain package path, got:\n%s", output)
	}
}

// TestRenderResolveContent_Identity verifies that an identity renders
// its name, kind, class, contracts, and keyed signatures.
func TestRenderResolveContent_Identity(t *testing.T) {
	v := report.View{
		Package: "example.com/pkg",
		Identities: []report.IdentityView{
			{
				Name:      "Process",
				Kind:      "method",
				Class:     "overload_group",
				Contracts: []string{"Worker"},
				Signatures: []report.SignatureView{
					{Key: "sig-0a1b2c3d", Shape: "method Process(string) int"},
					{Key: "sig-4e5f6a7b", Shape: "method Process(int) int"},
				},
			},
		},
	}

	output := renderResolveContent(v, report.DefaultStyles())

	if !strings.Contains(output, "Process") {
		t.Errorf("expected output to contain 'Process', got:\n%s", output)
	}
	if !strings.Contains(output, "overload_group") {
		t.Errorf("expected output to contain class 'overload_group', got:\n%s", output)
	}
	if !strings.Contains(output, "contracts: Worker") {
		t.Errorf("expected output to contain 'contracts: Worker', got:\n%s", output)
	}
	for _, key := range []string{"sig-0a1b2c3d", "sig-4e5f6a7b"} {
		if !strings.Contains(output, key) {
			t.Errorf("expected output to contain key %q, got:\n%s", key, output)
		}
	}
	if !strings.Contains(output, "1 identit(ies)") {
		t.Errorf("expected output to contain '1 identit(ies)', got:\n%s", output)
	}
}

// TestRenderResolveContent_ShapeTruncation verifies that call shapes
// longer than 54 characters are truncated with "..." in the table.
func TestRenderResolveContent_ShapeTruncation(t *testing.T) {
	longShape := "method VeryLongMethodName(SomeExtremelyLongParameterType, AnotherOne) ReturnType"
	if len(longShape) <= 54 {
		t.Fatalf("test setup: shape must be >54 chars, got %d", len(longShape))
	}

	v := report.View{
		Identities: []report.IdentityView{
			{
				Name:  "VeryLongMethodName",
				Kind:  "method",
				Class: "plain",
				Signatures: []report.SignatureView{
					{Key: "sig-deadbeef", Shape: longShape},
				},
			},
		},
	}

	output := renderResolveContent(v, report.DefaultStyles())

	if strings.Contains(output, longShape) {
		t.Error("expected long shape to be truncated, but full shape found in output")
	}
	truncated := longShape[:51] + "..."
	if !strings.Contains(output, truncated) {
		t.Errorf("expected output to contain truncated shape %q, got:\n%s", truncated, output)
	}
}

// TestRenderResolveContent_Conflicts verifies that conflicts render
// their messages under a CONFLICTS section.
func TestRenderResolveContent_Conflicts(t *testing.T) {
	v := report.View{
		Conflicts: []report.ConflictView{
			{
				Name:    "Add",
				Reason:  "ambiguous_call",
				Message: `member "Add": identical signature declared by Calculator, Accumulator`,
			},
		},
	}

	output := renderResolveContent(v, report.DefaultStyles())

	if !strings.Contains(output, "CONFLICTS") {
		t.Errorf("expected output to contain 'CONFLICTS', got:\n%s", output)
	}
	if !strings.Contains(output, "identical signature declared by") {
		t.Errorf("expected output to contain conflict message, got:\n%s", output)
	}
	if !strings.Contains(output, "1 conflict(s)") {
		t.Errorf("expected output to contain '1 conflict(s)', got:\n%s", output)
	}
}
