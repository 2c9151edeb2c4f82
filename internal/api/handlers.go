package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mwhite7112/woodpantry-nutrition/internal/classifier"
	"github.com/mwhite7112/woodpantry-nutrition/internal/logging"
	"github.com/mwhite7112/woodpantry-nutrition/internal/service"
)

const (
	internalErrorMessage = "Internal Server Error during nutrition lookup."

	// multipartSlack covers form boundaries and headers around the image part.
	multipartSlack = 1 << 20
)

// NewRouter wires up all routes with the provided Service. The image routes are
// only mounted when the Service has a classifier.
func NewRouter(svc *service.Service, maxImageBytes int64) http.Handler {
	r := chi.NewRouter()
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", logging.RequestIDHeader},
		ExposedHeaders: []string{logging.RequestIDHeader},
	}))

	r.Get("/healthz", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/nutrition", handleNutrition(svc))
		if svc.CanClassify() {
			r.Post("/classify", handleClassify(svc, maxImageBytes))
			r.Post("/recognize", handleRecognize(svc, maxImageBytes))
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- nutrition ---

type nutritionRequest struct {
	Food string `json:"food"`
}

type nutritionResponse struct {
	Nutrition service.Result `json:"nutrition"`
}

func handleNutrition(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverInternal(w)

		var req nutritionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		label, rejected, ok := service.Gate(req.Food)
		if !ok {
			writeNutrition(w, rejected)
			return
		}
		writeNutrition(w, svc.Lookup(r.Context(), label))
	}
}

// writeNutrition sends a lookup outcome. Every variant is a 200; anything else
// reaching here is a programming error.
func writeNutrition(w http.ResponseWriter, res service.Result) {
	switch res.(type) {
	case service.Match, service.NotFound, service.Failure:
		jsonOK(w, nutritionResponse{Nutrition: res})
	default:
		jsonError(w, internalErrorMessage, http.StatusInternalServerError,
			fmt.Errorf("unhandled nutrition result %T", res))
	}
}

// recoverInternal turns a panic in a nutrition handler into the generic 500.
func recoverInternal(w http.ResponseWriter) {
	if rec := recover(); rec != nil {
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		jsonError(w, internalErrorMessage, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec))
	}
}

// --- classify ---

type classifyResponse struct {
	Label string `json:"label"`
}

func handleClassify(svc *service.Service, maxImageBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		image, ok := readImage(w, r, maxImageBytes)
		if !ok {
			return
		}
		label, err := svc.Classify(r.Context(), image)
		if err != nil {
			classifyError(w, err)
			return
		}
		jsonOK(w, classifyResponse{Label: label})
	}
}

// --- recognize ---

type recognizeResponse struct {
	Label     string         `json:"label"`
	Nutrition service.Result `json:"nutrition"`
}

func handleRecognize(svc *service.Service, maxImageBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverInternal(w)

		image, ok := readImage(w, r, maxImageBytes)
		if !ok {
			return
		}
		res, err := svc.Recognize(r.Context(), image)
		if err != nil {
			classifyError(w, err)
			return
		}
		switch res.Nutrition.(type) {
		case service.Match, service.NotFound, service.Failure:
			jsonOK(w, recognizeResponse{Label: res.Label, Nutrition: res.Nutrition})
		default:
			jsonError(w, internalErrorMessage, http.StatusInternalServerError,
				fmt.Errorf("unhandled nutrition result %T", res.Nutrition))
		}
	}
}

// --- helpers ---

// readImage pulls the "image" part out of a multipart upload, writing a 400 and
// returning false when it is missing, empty or too large.
func readImage(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartSlack)
	file, header, err := r.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonError(w, fmt.Sprintf("image too large (max %d bytes)", maxBytes), http.StatusBadRequest)
			return nil, false
		}
		jsonError(w, "missing image file (form field 'image')", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	if header.Size > maxBytes {
		jsonError(w, fmt.Sprintf("image too large (max %d bytes)", maxBytes), http.StatusBadRequest)
		return nil, false
	}
	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, "failed to read image", http.StatusBadRequest)
		return nil, false
	}
	if len(data) == 0 {
		jsonError(w, "image is empty", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

func classifyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, classifier.ErrEmptyImage):
		jsonError(w, "image is empty", http.StatusBadRequest)
	case errors.Is(err, service.ErrNoClassifier):
		jsonError(w, "image classification is not configured", http.StatusServiceUnavailable, err)
	default:
		jsonError(w, "image classification failed", http.StatusBadGateway, err)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
