package agent

import "context"

// FieldType is the expected shape of an extracted field.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
	FieldInt    FieldType = "int"
	FieldBool   FieldType = "bool"
)

// FieldSpec declares one field a tool consumes. The dispatcher validates
// required fields and types against these specs before the tool runs, so
// Execute can assume required fields are present and well typed.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Required bool
}

// Tool is one dispatchable operation, keyed by the intent it serves.
type Tool interface {
	// Intent returns the intent this tool handles.
	Intent() Intent

	// Description returns a one-line summary used in logs and the help text.
	Description() string

	// Fields returns the declarative argument table for this tool.
	Fields() []FieldSpec

	// Execute runs the tool with a validated argument bag. The returned
	// value is a domain result the formatter knows how to render; errors are
	// domain errors the dispatcher translates into failure envelopes.
	Execute(ctx context.Context, args Args) (any, error)
}

// ToolRegistry manages the tools available for dispatch.
type ToolRegistry struct {
	tools map[Intent]Tool
}

// NewToolRegistry creates an empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[Intent]Tool),
	}
}

// Register adds a tool to the registry, replacing any previous tool for the
// same intent.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Intent()] = tool
}

// Get retrieves the tool for an intent.
func (r *ToolRegistry) Get(intent Intent) (Tool, bool) {
	tool, ok := r.tools[intent]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}
