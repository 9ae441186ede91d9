package vpcnet

import "fmt"

// Stack is a named collection of resources that synthesizes to a single
// CloudFormation template.
//
// Resources are registered by pointer under an explicit logical ID. Because
// registration keeps pointer identity, a declaration that references another
// resource directly (VpcId: &Vpc) resolves to {"Ref": "Vpc"} at synthesis
// time without any string plumbing.
//
// Registration methods panic on duplicate or empty logical IDs. Stacks are
// assembled in package variable initializers, so a bad registration is a
// programming error surfaced at process start, like regexp.MustCompile.
type Stack struct {
	Name        string
	Description string

	resources   map[string]Resource
	order       []string
	names       map[any]string
	parameters  map[string]any
	paramOrder  []string
	mappings    map[string]any
	mapOrder    []string
	outputs     map[string]Output
	outputOrder []string
}

// NewStack creates an empty stack.
func NewStack(name, description string) *Stack {
	return &Stack{
		Name:        name,
		Description: description,
		resources:   make(map[string]Resource),
		names:       make(map[any]string),
		parameters:  make(map[string]any),
		mappings:    make(map[string]any),
		outputs:     make(map[string]Output),
	}
}

// Resource registers a resource pointer under the given logical ID.
func (s *Stack) Resource(name string, r Resource) *Stack {
	s.checkName(name)
	if r == nil {
		panic(fmt.Sprintf("stack %s: resource %s is nil", s.Name, name))
	}
	if existing, ok := s.names[r]; ok {
		panic(fmt.Sprintf("stack %s: resource already registered as %s", s.Name, existing))
	}
	s.resources[name] = r
	s.names[r] = name
	s.order = append(s.order, name)
	return s
}

// Parameter registers a template parameter. The value is typically a
// *intrinsics.Parameter; referencing the same pointer from a resource
// property serializes to {"Ref": name}.
func (s *Stack) Parameter(name string, p any) *Stack {
	s.checkName(name)
	if named, ok := p.(interface{ SetName(string) }); ok {
		named.SetName(name)
	}
	s.parameters[name] = p
	s.names[p] = name
	s.paramOrder = append(s.paramOrder, name)
	return s
}

// Mapping registers a Mappings table under the given name.
func (s *Stack) Mapping(name string, m any) *Stack {
	s.checkName(name)
	s.mappings[name] = m
	s.mapOrder = append(s.mapOrder, name)
	return s
}

// Output registers a template output.
func (s *Stack) Output(name string, o Output) *Stack {
	s.checkName(name)
	s.outputs[name] = o
	s.outputOrder = append(s.outputOrder, name)
	return s
}

func (s *Stack) checkName(name string) {
	if name == "" {
		panic(fmt.Sprintf("stack %s: empty logical ID", s.Name))
	}
	if _, ok := s.resources[name]; ok {
		panic(fmt.Sprintf("stack %s: duplicate logical ID %s", s.Name, name))
	}
	if _, ok := s.parameters[name]; ok {
		panic(fmt.Sprintf("stack %s: duplicate logical ID %s", s.Name, name))
	}
	if _, ok := s.mappings[name]; ok {
		panic(fmt.Sprintf("stack %s: duplicate logical ID %s", s.Name, name))
	}
	if _, ok := s.outputs[name]; ok {
		panic(fmt.Sprintf("stack %s: duplicate logical ID %s", s.Name, name))
	}
}

// ResourceNames returns logical IDs in registration order.
func (s *Stack) ResourceNames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Get returns the resource registered under the given logical ID.
func (s *Stack) Get(name string) (Resource, bool) {
	r, ok := s.resources[name]
	return r, ok
}

// NameOf returns the logical ID of a registered resource or parameter
// pointer. It reports false for values this stack does not know about.
func (s *Stack) NameOf(v any) (string, bool) {
	name, ok := s.names[v]
	return name, ok
}

// ParameterNames returns parameter names in registration order.
func (s *Stack) ParameterNames() []string {
	out := make([]string, len(s.paramOrder))
	copy(out, s.paramOrder)
	return out
}

// GetParameter returns the parameter registered under the given name.
func (s *Stack) GetParameter(name string) (any, bool) {
	p, ok := s.parameters[name]
	return p, ok
}

// MappingNames returns mapping names in registration order.
func (s *Stack) MappingNames() []string {
	out := make([]string, len(s.mapOrder))
	copy(out, s.mapOrder)
	return out
}

// GetMapping returns the mapping registered under the given name.
func (s *Stack) GetMapping(name string) (any, bool) {
	m, ok := s.mappings[name]
	return m, ok
}

// OutputNames returns output names in registration order.
func (s *Stack) OutputNames() []string {
	out := make([]string, len(s.outputOrder))
	copy(out, s.outputOrder)
	return out
}

// GetOutput returns the output registered under the given name.
func (s *Stack) GetOutput(name string) (Output, bool) {
	o, ok := s.outputs[name]
	return o, ok
}
