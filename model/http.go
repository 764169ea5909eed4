package model

type CycleRequest struct {
	Start      int   `json:"start"`
	Generators []int `json:"generators"`
	Modulus    int   `json:"modulus"`
	MaxSteps   int   `json:"max_steps,omitempty"`
}

type CycleResponse struct {
	Sequence  PCSequence `json:"sequence"`
	Canonical PCSequence `json:"canonical"`
}

type ClassifyRequest struct {
	PitchClasses PCSequence `json:"pitch_classes"`
	Modulus      int        `json:"modulus"`
}

type ScheduleRequest struct {
	// Each element is one event's pitch classes; more than one pitch
	// class means a chord at a single onset.
	Pitches   [][]int  `json:"pitches"`
	Durations []string `json:"durations"`
	Modulus   int      `json:"modulus"`

	MaxEvents   int    `json:"max_events,omitempty"`
	MaxDuration string `json:"max_duration,omitempty"`
}

type EventResponse struct {
	Pitches  []int  `json:"pitches"`
	Onset    string `json:"onset"`
	Duration string `json:"duration"`
}

type ScheduleResponse struct {
	Events []EventResponse `json:"events"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
