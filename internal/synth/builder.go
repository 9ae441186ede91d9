package synth

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"

	vpcnet "github.com/GraemeHosford/vpc-pluralsight"
)

// ResourceInfo is a serialized resource plus the references discovered
// while serializing it.
type ResourceInfo struct {
	Name       string
	Type       string
	Properties map[string]any

	// Dependencies are logical IDs of resources this resource references.
	Dependencies []string
	// AttrRefs is the subset of Dependencies referenced via Fn::GetAtt.
	AttrRefs []string
	// ParameterRefs are names of parameters this resource references.
	ParameterRefs []string
}

// Model is a fully serialized stack: every resource with its properties and
// dependency edges, in deterministic dependency order.
type Model struct {
	Stack     *vpcnet.Stack
	Resources map[string]ResourceInfo
	// Order lists logical IDs so that every resource appears after the
	// resources it depends on.
	Order []string
}

// Describe serializes a single registered resource.
func Describe(s *vpcnet.Stack, name string) (ResourceInfo, error) {
	r, ok := s.Get(name)
	if !ok {
		return ResourceInfo{}, fmt.Errorf("no resource %q in stack %s", name, s.Name)
	}

	rs := newResolver(s)
	props, err := rs.structProps(reflect.ValueOf(r))
	if err != nil {
		return ResourceInfo{}, fmt.Errorf("serializing %s: %w", name, err)
	}

	info := ResourceInfo{
		Name:          name,
		Type:          r.ResourceType(),
		Properties:    props,
		Dependencies:  sortedKeys(rs.deps),
		AttrRefs:      sortedKeys(rs.attrRefs),
		ParameterRefs: sortedKeys(rs.paramRefs),
	}

	// Self-references are declaration bugs, not dependencies.
	for _, dep := range info.Dependencies {
		if dep == name {
			return ResourceInfo{}, fmt.Errorf("resource %s references itself", name)
		}
	}

	return info, nil
}

// Discover serializes every resource in the stack and computes the
// dependency order.
func Discover(s *vpcnet.Stack) (*Model, error) {
	m := &Model{
		Stack:     s,
		Resources: make(map[string]ResourceInfo),
	}

	for _, name := range s.ResourceNames() {
		info, err := Describe(s, name)
		if err != nil {
			return nil, err
		}
		m.Resources[name] = info
	}

	order, err := topologicalSort(m.Resources)
	if err != nil {
		return nil, err
	}
	m.Order = order

	return m, nil
}

// Synthesize builds the CloudFormation template for a stack.
func Synthesize(s *vpcnet.Stack) (*vpcnet.Template, error) {
	m, err := Discover(s)
	if err != nil {
		return nil, err
	}

	if errs := Validate(m); len(errs) > 0 {
		return nil, fmt.Errorf("stack %s: %w", s.Name, errors.Join(errs...))
	}

	template := &vpcnet.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              s.Description,
		Resources:                make(map[string]vpcnet.ResourceDef),
	}

	if names := s.ParameterNames(); len(names) > 0 {
		template.Parameters = make(map[string]vpcnet.Parameter)
		for _, name := range names {
			p, _ := s.GetParameter(name)
			template.Parameters[name] = parameterDef(p)
		}
	}

	if names := s.MappingNames(); len(names) > 0 {
		template.Mappings = make(map[string]any)
		for _, name := range names {
			mapping, _ := s.GetMapping(name)
			val, err := Value(s, mapping)
			if err != nil {
				return nil, fmt.Errorf("serializing mapping %s: %w", name, err)
			}
			template.Mappings[name] = val
		}
	}

	for _, name := range m.Order {
		info := m.Resources[name]
		template.Resources[name] = vpcnet.ResourceDef{
			Type:       info.Type,
			Properties: info.Properties,
		}
	}

	if names := s.OutputNames(); len(names) > 0 {
		template.Outputs = make(map[string]vpcnet.Output)
		for _, name := range names {
			out, _ := s.GetOutput(name)
			val, err := Value(s, out.Value)
			if err != nil {
				return nil, fmt.Errorf("serializing output %s: %w", name, err)
			}
			out.Value = val
			template.Outputs[name] = out
		}
	}

	return template, nil
}

// parameterDef converts a registered parameter value into the template
// Parameters section entry.
func parameterDef(p any) vpcnet.Parameter {
	def, ok := p.(interface{ ToDefinition() map[string]any })
	if !ok {
		return vpcnet.Parameter{Type: "String"}
	}

	valMap := def.ToDefinition()
	param := vpcnet.Parameter{Type: "String"}

	if t, ok := valMap["Type"].(string); ok && t != "" {
		param.Type = t
	}
	if desc, ok := valMap["Description"].(string); ok {
		param.Description = desc
	}
	if d, ok := valMap["Default"]; ok {
		param.Default = d
	}
	if vals, ok := valMap["AllowedValues"].([]any); ok {
		param.AllowedValues = vals
	}
	if pattern, ok := valMap["AllowedPattern"].(string); ok {
		param.AllowedPattern = pattern
	}
	if desc, ok := valMap["ConstraintDescription"].(string); ok {
		param.ConstraintDescription = desc
	}
	if v, ok := valMap["NoEcho"].(bool); ok {
		param.NoEcho = v
	}

	return param
}

// topologicalSort returns resources in dependency order using Kahn's
// algorithm with a sorted queue for deterministic output.
func topologicalSort(resources map[string]ResourceInfo) ([]string, error) {
	graph := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range resources {
		graph[name] = nil
		inDegree[name] = 0
	}

	for name, info := range resources {
		for _, dep := range info.Dependencies {
			if _, exists := resources[dep]; exists {
				graph[dep] = append(graph[dep], name)
				inDegree[name]++
			}
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range graph[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue)
			}
		}
	}

	if len(result) != len(resources) {
		return nil, detectCycle(resources)
	}

	return result, nil
}

// detectCycle finds and reports a cycle in the dependency graph.
func detectCycle(resources map[string]ResourceInfo) error {
	visited := make(map[string]bool)
	path := make(map[string]bool)

	var cycle []string
	var findCycle func(node string) bool
	findCycle = func(node string) bool {
		visited[node] = true
		path[node] = true

		for _, dep := range resources[node].Dependencies {
			if _, exists := resources[dep]; !exists {
				continue
			}
			if !visited[dep] {
				if findCycle(dep) {
					cycle = append([]string{node}, cycle...)
					return true
				}
			} else if path[dep] {
				cycle = append([]string{dep, node}, cycle...)
				return true
			}
		}

		path[node] = false
		return false
	}

	var names []string
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !visited[name] {
			if findCycle(name) {
				break
			}
		}
	}

	if len(cycle) > 0 {
		msg := "circular dependency detected: "
		for i, name := range cycle {
			msg += name
			if i < len(cycle)-1 {
				msg += " -> "
			}
		}
		return errors.New(msg)
	}

	return errors.New("circular dependency detected")
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToJSON serializes the template to JSON.
func ToJSON(t *vpcnet.Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// ToYAML serializes the template to YAML.
func ToYAML(t *vpcnet.Template) ([]byte, error) {
	return yaml.Marshal(t)
}
