package domain

// TemplateTask and TemplateDay mirror the curriculum shape so reconciliation
// stays decoupled from the curriculum module.
type TemplateTask struct {
	Description string
	Category    string
}

type TemplateDay struct {
	Day   int
	Tasks []TemplateTask
}

// Reconcile produces a store covering exactly the template's days. Days
// already present keep every stored field; missing days are synthesized from
// the template with zero progress. A day stored through notes or timer data
// alone carries no task list, so its checklist is snapshotted from the
// template while the stored fields stay put. Days absent from the template
// are dropped. Reconciling an already reconciled store is a no-op.
func Reconcile(base Store, template []TemplateDay) Store {
	out := NewStore()
	out.LabsCompleted = nonNegative(base.LabsCompleted)
	out.LabPoints = nonNegative(base.LabPoints)

	for _, td := range template {
		if rec, ok := base.Records[td.Day]; ok {
			rec.Day = td.Day
			if len(rec.Tasks) == 0 {
				rec.Tasks = snapshotTasks(td)
			} else {
				rec.Tasks = append([]TaskState(nil), rec.Tasks...)
			}
			rec.JobsApplied = nonNegative(rec.JobsApplied)
			if rec.Timer.AccumulatedSeconds < 0 {
				rec.Timer.AccumulatedSeconds = 0
			}
			out.Records[td.Day] = rec
			continue
		}
		out.Records[td.Day] = DayRecord{Day: td.Day, Tasks: snapshotTasks(td)}
	}
	return out
}

func snapshotTasks(td TemplateDay) []TaskState {
	tasks := make([]TaskState, len(td.Tasks))
	for i, t := range td.Tasks {
		tasks[i] = TaskState{Description: t.Description, Category: t.Category}
	}
	return tasks
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
