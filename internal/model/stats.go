package model

// TaskStats aggregates a project's tasks by status. It is always recomputed
// from the current task rows, never cached.
type TaskStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	Todo           int     `json:"todo"`
	CompletionRate float64 `json:"completion_rate"`
}

// NewTaskStats computes aggregate statistics over a snapshot of tasks.
// CompletionRate is 0.0 for an empty snapshot.
func NewTaskStats(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case TaskStatusDone:
			stats.Completed++
		case TaskStatusInProgress:
			stats.InProgress++
		case TaskStatusTodo:
			stats.Todo++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}
