package plans

import "time"

// PlanExercise is a single exercise of the workout plan, assigned to one
// of the rotation plan days (1 to 5).
type PlanExercise struct {
	ID        int       `json:"id"`
	Day       int       `json:"day"`
	Name      string    `json:"name"`
	Sets      int       `json:"sets"`
	Reps      int       `json:"reps"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
