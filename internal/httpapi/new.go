package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nguyentantai21042004/slide-flow/internal/logger"
	"github.com/nguyentantai21042004/slide-flow/internal/metrics"
	"github.com/nguyentantai21042004/slide-flow/internal/presentation"
)

// maxUploadBytes bounds a multipart audio upload.
const maxUploadBytes = 100 << 20

// Deps are the collaborators of the HTTP handler.
type Deps struct {
	Service    presentation.Service
	UploadsDir string
	Metrics    *metrics.Collector
	Gatherer   prometheus.Gatherer
	Logger     logger.Logger
}

type handler struct {
	svc        presentation.Service
	uploadsDir string
	metrics    *metrics.Collector
	logger     logger.Logger
}

// New builds the router for every public route.
func New(deps Deps) http.Handler {
	h := &handler{
		svc:        deps.Service,
		uploadsDir: deps.UploadsDir,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}

	r := mux.NewRouter()
	r.Use(h.observe)

	r.HandleFunc("/upload_audio", h.uploadAudio).Methods(http.MethodPost)
	r.HandleFunc("/process_transcript", h.processTranscript).Methods(http.MethodPost)
	r.HandleFunc("/presentation/{id:[0-9]+}", h.getPresentation).Methods(http.MethodGet)
	r.HandleFunc("/presentation/{id:[0-9]+}/update", h.updatePresentation).Methods(http.MethodPost)
	r.HandleFunc("/export/{id:[0-9]+}/{format}", h.exportPresentation).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/presentations", h.listPresentations).Methods(http.MethodGet)
	api.HandleFunc("/presentations/{id:[0-9]+}/status", h.presentationStatus).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	return r
}
