// Package differ compares two synthesized CloudFormation templates at the
// resource level. It answers "what would change" before a template is pushed
// over one already deployed.
package differ

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

// Result contains the difference between two templates.
type Result struct {
	Diff    vpcnet.TemplateDiff
	Summary vpcnet.DiffSummary
}

// Compare diffs old against new and returns the resource-level changes.
func Compare(oldT, newT *vpcnet.Template) *Result {
	result := &Result{}

	for name, def := range newT.Resources {
		if _, exists := oldT.Resources[name]; !exists {
			result.Diff.Added = append(result.Diff.Added, vpcnet.DiffEntry{
				Resource: name,
				Type:     def.Type,
			})
		}
	}

	for name, def := range oldT.Resources {
		if _, exists := newT.Resources[name]; !exists {
			result.Diff.Removed = append(result.Diff.Removed, vpcnet.DiffEntry{
				Resource: name,
				Type:     def.Type,
			})
		}
	}

	for name, oldDef := range oldT.Resources {
		newDef, exists := newT.Resources[name]
		if !exists {
			continue
		}
		changes := compareResources(oldDef, newDef)
		if len(changes) > 0 {
			result.Diff.Modified = append(result.Diff.Modified, vpcnet.DiffEntry{
				Resource: name,
				Type:     newDef.Type,
				Changes:  changes,
			})
		}
	}

	sortEntries(result.Diff.Added)
	sortEntries(result.Diff.Removed)
	sortEntries(result.Diff.Modified)

	result.Summary = vpcnet.DiffSummary{
		Added:    len(result.Diff.Added),
		Removed:  len(result.Diff.Removed),
		Modified: len(result.Diff.Modified),
	}
	result.Summary.Total = result.Summary.Added + result.Summary.Removed + result.Summary.Modified

	return result
}

// CompareFiles loads and diffs two template files.
func CompareFiles(oldPath, newPath string) (*Result, error) {
	oldT, err := LoadTemplate(oldPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", oldPath, err)
	}
	newT, err := LoadTemplate(newPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", newPath, err)
	}
	return Compare(oldT, newT), nil
}

// LoadTemplate reads a JSON or YAML template from disk.
func LoadTemplate(path string) (*vpcnet.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var template vpcnet.Template
	if err := json.Unmarshal(data, &template); err != nil {
		if err := yaml.Unmarshal(data, &template); err != nil {
			return nil, fmt.Errorf("parsing %s as JSON or YAML: %w", path, err)
		}
	}
	return &template, nil
}

func compareResources(oldDef, newDef vpcnet.ResourceDef) []vpcnet.Change {
	var changes []vpcnet.Change

	if oldDef.Type != newDef.Type {
		changes = append(changes, vpcnet.Change{
			Property: "Type",
			Old:      oldDef.Type,
			New:      newDef.Type,
		})
	}

	changes = append(changes, compareProperties(oldDef.Properties, newDef.Properties)...)

	if !reflect.DeepEqual(oldDef.DependsOn, newDef.DependsOn) {
		changes = append(changes, vpcnet.Change{
			Property: "DependsOn",
			Old:      oldDef.DependsOn,
			New:      newDef.DependsOn,
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Property < changes[j].Property
	})
	return changes
}

func compareProperties(oldProps, newProps map[string]any) []vpcnet.Change {
	var changes []vpcnet.Change

	for key, newVal := range newProps {
		oldVal, exists := oldProps[key]
		if !exists {
			changes = append(changes, vpcnet.Change{Property: key, New: newVal})
			continue
		}
		if !equalValues(oldVal, newVal) {
			changes = append(changes, vpcnet.Change{Property: key, Old: oldVal, New: newVal})
		}
	}

	for key, oldVal := range oldProps {
		if _, exists := newProps[key]; !exists {
			changes = append(changes, vpcnet.Change{Property: key, Old: oldVal})
		}
	}

	return changes
}

// equalValues compares property values through a JSON roundtrip, so that
// int vs float64 and yaml vs json decode differences do not register as
// changes.
func equalValues(a, b any) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return string(aj) == string(bj)
}

func sortEntries(entries []vpcnet.DiffEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Resource < entries[j].Resource
	})
}
