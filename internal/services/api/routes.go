package api

import "net/http"

// NewHandler builds the HTTP handler for the BMI API.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/bmi", handleCompute)
	mux.HandleFunc("/healthz", handleHealth)
	return mux
}
