package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so request handlers set the entity IDs once
// and every log statement below them carries the same identifiers.
type LogFields struct {
	OrgID     *int64  // Owning organization ID
	ProjectID *int64  // Project ID
	TaskID    *int64  // Task ID
	OrgSlug   *string // Organization slug (tenant key)
	Component string  // Component name (e.g., "tracker.service.project")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.OrgID != nil {
		result.OrgID = next.OrgID
	}
	if next.ProjectID != nil {
		result.ProjectID = next.ProjectID
	}
	if next.TaskID != nil {
		result.TaskID = next.TaskID
	}
	if next.OrgSlug != nil {
		result.OrgSlug = next.OrgSlug
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}
