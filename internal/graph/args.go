package graph

import (
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/service"
)

// parseID decodes a GraphQL ID argument into the internal numeric form.
func parseID(v interface{}) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, invalidf("id must be a string")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalidf("malformed id %q", s)
	}
	return id, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// inputMap returns the input argument with explicit nulls put back. The
// executor coerces null variable values out of the args map, so they are
// recovered from the raw variables that Execute keeps on the context.
func inputMap(p graphql.ResolveParams) (map[string]interface{}, error) {
	in, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, invalidf("input is required")
	}
	vars := rawVariables(p.Context)
	if len(vars) == 0 {
		return in, nil
	}
	for _, field := range p.Info.FieldASTs {
		for _, arg := range field.Arguments {
			if arg.Name != nil && arg.Name.Value == "input" {
				restoreNulls(in, arg.Value, vars)
			}
		}
	}
	return in, nil
}

// restoreNulls handles both shapes a client can send: the whole input as one
// variable, or an inline input object with nulled field variables. Inline
// null literals never get this far; the parser rejects them.
func restoreNulls(in map[string]interface{}, value ast.Value, vars map[string]interface{}) {
	switch v := value.(type) {
	case *ast.Variable:
		raw, ok := vars[v.Name.Value].(map[string]interface{})
		if !ok {
			return
		}
		for key, val := range raw {
			if val == nil {
				in[key] = nil
			}
		}
	case *ast.ObjectValue:
		for _, f := range v.Fields {
			fv, ok := f.Value.(*ast.Variable)
			if !ok {
				continue
			}
			if raw, present := vars[fv.Name.Value]; present && raw == nil {
				in[f.Name.Value] = nil
			}
		}
	}
}

func stringArg(m map[string]interface{}, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func timeArg(m map[string]interface{}, key string) *time.Time {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil
	}
	return &t
}

// optString maps a nullable input field onto the tri-state update form:
// absent leaves the field alone, explicit null clears it to empty.
func optString(m map[string]interface{}, key string) service.Opt[string] {
	v, ok := m[key]
	if !ok {
		return service.Opt[string]{}
	}
	if v == nil {
		return service.Some("")
	}
	s, ok := v.(string)
	if !ok {
		return service.Opt[string]{}
	}
	return service.Some(s)
}

// reqOptString is for fields that may be omitted but never nulled out, like
// names and titles.
func reqOptString(m map[string]interface{}, key string) (service.Opt[string], error) {
	v, ok := m[key]
	if !ok {
		return service.Opt[string]{}, nil
	}
	if v == nil {
		return service.Opt[string]{}, invalidf("%s cannot be null", key)
	}
	s, ok := v.(string)
	if !ok {
		return service.Opt[string]{}, invalidf("%s must be a string", key)
	}
	return service.Some(s), nil
}

// optDueDate treats an explicit null as a request to clear the due date.
func optDueDate(m map[string]interface{}, key string) service.Opt[*time.Time] {
	v, ok := m[key]
	if !ok {
		return service.Opt[*time.Time]{}
	}
	if v == nil {
		return service.Some[*time.Time](nil)
	}
	t, ok := v.(time.Time)
	if !ok {
		return service.Opt[*time.Time]{}
	}
	return service.Some(&t)
}

func optProjectStatus(m map[string]interface{}) (service.Opt[model.ProjectStatus], error) {
	v, ok := m["status"]
	if !ok {
		return service.Opt[model.ProjectStatus]{}, nil
	}
	if v == nil {
		return service.Opt[model.ProjectStatus]{}, invalidf("status cannot be null")
	}
	s, ok := v.(model.ProjectStatus)
	if !ok {
		return service.Opt[model.ProjectStatus]{}, invalidf("invalid project status")
	}
	return service.Some(s), nil
}

func optTaskStatus(m map[string]interface{}) (service.Opt[model.TaskStatus], error) {
	v, ok := m["status"]
	if !ok {
		return service.Opt[model.TaskStatus]{}, nil
	}
	if v == nil {
		return service.Opt[model.TaskStatus]{}, invalidf("status cannot be null")
	}
	s, ok := v.(model.TaskStatus)
	if !ok {
		return service.Opt[model.TaskStatus]{}, invalidf("invalid task status")
	}
	return service.Some(s), nil
}

func projectStatusArg(m map[string]interface{}) *model.ProjectStatus {
	v, ok := m["status"]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(model.ProjectStatus)
	if !ok {
		return nil
	}
	return &s
}

func taskStatusArg(m map[string]interface{}) *model.TaskStatus {
	v, ok := m["status"]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(model.TaskStatus)
	if !ok {
		return nil
	}
	return &s
}

func ptrs[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}
