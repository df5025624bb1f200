package trainingdays

// PlanDaysCount is the length of the workout plan rotation:
// plan days cycle 1 -> 2 -> 3 -> 4 -> 5 -> 1.
const PlanDaysCount = 5

// TrainingDay is one record of the training log, keyed by calendar date.
// Rescheduled marks records inserted retroactively for skipped dates,
// as opposed to records created on the date itself.
type TrainingDay struct {
	Date        Date `json:"date"`
	PlannedDay  int  `json:"plannedDay"`
	Completed   bool `json:"completed"`
	Rescheduled bool `json:"rescheduled"`
}
