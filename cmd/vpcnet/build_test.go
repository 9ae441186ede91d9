package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

func TestResolveStacksDefaultsToAll(t *testing.T) {
	targets, err := resolveStacks(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(targets) != 5 {
		t.Errorf("got %d stacks, want 5", len(targets))
	}
	if targets[0].Name != "vpc-pluralsight-base" {
		t.Errorf("first stack = %q, want vpc-pluralsight-base", targets[0].Name)
	}
}

func TestResolveStacksUnknownName(t *testing.T) {
	_, err := resolveStacks([]string{"no-such-stack"})
	if err == nil {
		t.Error("expected error for unknown stack")
	}
}

func TestRunBuildWritesFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "base.json")

	if err := runBuild([]string{"vpc-pluralsight-base"}, "json", out, ""); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var tmpl vpcnet.Template
	if err := json.Unmarshal(data, &tmpl); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := tmpl.Resources["Vpc"]; !ok {
		t.Error("template missing Vpc resource")
	}
}

func TestRunBuildOutputDir(t *testing.T) {
	dir := t.TempDir()

	if err := runBuild(nil, "yaml", "", dir); err != nil {
		t.Fatalf("runBuild: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d templates, want one per stack (5)", len(entries))
	}
}

func TestRunBuildRejectsMultiStackOutputFile(t *testing.T) {
	err := runBuild(nil, "json", "out.json", "")
	if err == nil {
		t.Error("expected error for --output with multiple stacks")
	}
}

func TestRunBuildUnknownFormat(t *testing.T) {
	err := runBuild([]string{"vpc-pluralsight-base"}, "toml", "", "")
	if err == nil {
		t.Error("expected error for unknown format")
	}
}
