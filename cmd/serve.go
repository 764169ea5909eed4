package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/siahbug/harmonica/classify"
	"github.com/siahbug/harmonica/cycle"
	"github.com/siahbug/harmonica/model"
	"github.com/siahbug/harmonica/orbit"
	"github.com/siahbug/harmonica/rational"
	"github.com/siahbug/harmonica/schedule"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the toolkit over HTTP",
	Long:  `Serves cycle generation, classification and scheduling as a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func getPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

func requestModulus(m int) int {
	if m == 0 {
		return 12
	}
	return m
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleCycle(w http.ResponseWriter, r *http.Request) {
	var input model.CycleRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}
	m := requestModulus(input.Modulus)

	seq, err := cycle.Generate(input.Start, input.Generators, m, input.MaxSteps)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	canonical, err := orbit.Necklace(seq, m)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	json.NewEncoder(w).Encode(model.CycleResponse{Sequence: seq, Canonical: canonical})
}

func HandleClassify(w http.ResponseWriter, r *http.Request) {
	var input model.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}

	classifier, err := classify.New(requestModulus(input.Modulus))
	if err != nil {
		writeError(w, 400, err)
		return
	}
	info, err := classifier.Classify(input.PitchClasses)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	json.NewEncoder(w).Encode(info)
}

func HandleSchedule(w http.ResponseWriter, r *http.Request) {
	var input model.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}

	durations := make([]rational.Rat, 0, len(input.Durations))
	for _, s := range input.Durations {
		d, err := rational.Parse(s)
		if err != nil {
			writeError(w, 400, err)
			return
		}
		durations = append(durations, d)
	}

	bound := schedule.Bound{MaxEvents: input.MaxEvents}
	if input.MaxDuration != "" {
		max, err := rational.Parse(input.MaxDuration)
		if err != nil {
			writeError(w, 400, err)
			return
		}
		bound.MaxDuration = &max
	}

	events, err := schedule.Schedule(
		schedule.PitchList(input.Pitches...),
		schedule.CycleDurations(durations...),
		nil,
		bound,
	)
	if err != nil {
		writeError(w, 400, err)
		return
	}

	res := model.ScheduleResponse{Events: make([]model.EventResponse, 0, len(events))}
	for _, e := range events {
		res.Events = append(res.Events, model.EventResponse{
			Pitches:  e.Pitches,
			Onset:    e.Onset.String(),
			Duration: e.Duration.String(),
		})
	}
	json.NewEncoder(w).Encode(res)
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/cycle", HandleCycle).Methods("POST")
	router.HandleFunc("/classify", HandleClassify).Methods("POST")
	router.HandleFunc("/schedule", HandleSchedule).Methods("POST")
	return cors.Default().Handler(router)
}

func serve() {
	log.Fatal(http.ListenAndServe(":"+getPort(), NewRouter()))
}
