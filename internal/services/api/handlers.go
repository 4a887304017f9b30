package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gileadraab/bmi-calculator/internal/bmi"
	apperrors "github.com/gileadraab/bmi-calculator/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName scopes spans emitted by this package.
const tracerName = "github.com/gileadraab/bmi-calculator/internal/services/api"

// computeRequest is the envelope for POST /v1/bmi. Weight and height are
// raw text exactly as the user entered them; validation happens in the
// engine, not here.
type computeRequest struct {
	Weight string `json:"weight"`
	Height string `json:"height"`
	Unit   string `json:"unit"`
}

// computeResponse is the success envelope for POST /v1/bmi.
type computeResponse struct {
	BMI         float64 `json:"bmi"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// errorBody carries the coded failure returned to clients.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the failure envelope for all endpoints.
type errorResponse struct {
	Error errorBody `json:"error"`
}

// handleCompute answers POST /v1/bmi with a computed and classified BMI,
// or a coded validation failure.
func handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeCodedError(w, http.StatusMethodNotAllowed, apperrors.CodeInvalidRequest, "method not allowed")
		return
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCodedError(w, http.StatusBadRequest, apperrors.CodeInvalidRequest, "request body must be a JSON object")
		return
	}

	_, span := otel.Tracer(tracerName).Start(r.Context(), "bmi.compute",
		trace.WithAttributes(attribute.String("bmi.height_unit", req.Unit)),
	)
	defer span.End()

	unit := bmi.UnitCentimeter
	if req.Unit != "" {
		parsed, err := bmi.ParseUnit(req.Unit)
		if err != nil {
			writeError(w, err)
			return
		}
		unit = parsed
	}

	measurement, err := bmi.Validate(req.Weight, req.Height, unit)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := bmi.Compute(measurement)
	if err != nil {
		writeError(w, err)
		return
	}

	span.SetAttributes(
		attribute.Float64("bmi.value", result.Value),
		attribute.String("bmi.category", categoryToString(result.Category)),
	)

	writeJSON(w, http.StatusOK, computeResponse{
		BMI:         result.Value,
		Category:    categoryToString(result.Category),
		Description: result.Description,
	})
}

// handleHealth answers GET /healthz for liveness probes.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		log.Printf("write health response: %v", err)
	}
}

// writeError renders an engine failure as a coded JSON response.
func writeError(w http.ResponseWriter, err error) {
	writeCodedError(w, apperrors.HTTPStatus(err), apperrors.FromError(err), err.Error())
}

// writeCodedError renders an explicit code and message pair.
func writeCodedError(w http.ResponseWriter, status int, code apperrors.Code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: message,
	}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// categoryToString maps an engine category to its wire representation.
func categoryToString(c bmi.Category) string {
	switch c {
	case bmi.CategoryUnderweight:
		return "UNDERWEIGHT"
	case bmi.CategoryNormal:
		return "NORMAL"
	case bmi.CategoryOverweight:
		return "OVERWEIGHT"
	case bmi.CategoryObesityI:
		return "OBESITY_I"
	case bmi.CategoryObesityII:
		return "OBESITY_II"
	case bmi.CategoryObesityIII:
		return "OBESITY_III"
	default:
		return "UNSPECIFIED"
	}
}
