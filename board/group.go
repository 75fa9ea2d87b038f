package board

// GroupByStatus buckets tasks by status. Every valid status appears as a key,
// so empty groups render as empty columns rather than disappearing.
func GroupByStatus(tasks []Task) map[Status][]Task {
	statuses := ValidStatuses()
	groups := make(map[Status][]Task, len(statuses))
	for _, status := range statuses {
		groups[status] = []Task{}
	}
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return groups
}
