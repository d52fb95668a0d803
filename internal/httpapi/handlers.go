package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nguyentantai21042004/slide-flow/internal/presentation"
	"github.com/nguyentantai21042004/slide-flow/internal/render"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
	"github.com/nguyentantai21042004/slide-flow/internal/transcriber"
)

// POST /upload_audio
func (h *handler) uploadAudio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No audio file provided")
		return
	}
	defer file.Close()

	name := sanitizeFilename(header.Filename)
	if name == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !transcriber.IsSupported(name) {
		writeError(w, http.StatusBadRequest, "Invalid file type. Please upload a valid audio file.")
		return
	}

	path, err := h.saveUpload(file, uuid.NewString()+"_"+name)
	if err != nil {
		h.logger.Error(r.Context(), "Error saving upload: %v", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while processing your request")
		return
	}

	p, err := h.svc.CreateFromAudio(r.Context(), path)
	if err != nil {
		h.logger.Error(r.Context(), "Error processing audio %s: %v", path, err)
		writeError(w, http.StatusInternalServerError, "Failed to process audio file")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{
		Success:        true,
		PresentationID: p.ID,
		Message:        "Audio uploaded and processed successfully",
	})
}

func (h *handler) saveUpload(src io.Reader, name string) (string, error) {
	if err := os.MkdirAll(h.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	path := filepath.Join(h.uploadsDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}

type transcriptRequest struct {
	Transcript string `json:"transcript"`
}

// POST /process_transcript
func (h *handler) processTranscript(w http.ResponseWriter, r *http.Request) {
	var req transcriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	p, err := h.svc.CreateFromTranscript(r.Context(), req.Transcript)
	switch {
	case errors.Is(err, presentation.ErrEmptyTranscript):
		writeError(w, http.StatusBadRequest, "No transcript provided")
		return
	case errors.Is(err, presentation.ErrTranscriptTooShort):
		writeError(w, http.StatusBadRequest, "Transcript too short. Please provide at least 10 words.")
		return
	case err != nil:
		h.logger.Error(r.Context(), "Error processing transcript: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate slides. Please try again with a shorter transcript or check your API key.")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{
		Success:        true,
		PresentationID: p.ID,
		Message:        "Slides generated successfully",
	})
}

// GET /presentation/{id}
func (h *handler) getPresentation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Presentation not found")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}

	switch p.Status {
	case slide.StatusProcessing:
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:  "Presentation is still being processed. Please wait...",
			Status: string(p.Status),
		})
	case slide.StatusError:
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "An error occurred while processing your presentation.",
			Status: string(p.Status),
		})
	default:
		writeJSON(w, http.StatusOK, p)
	}
}

type updateRequest struct {
	Slides *[]slide.Slide `json:"slides"`
}

// POST /presentation/{id}/update
func (h *handler) updatePresentation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Presentation not found")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid slides data: %v", err))
		return
	}
	if req.Slides == nil {
		writeError(w, http.StatusBadRequest, "No slides data provided")
		return
	}

	_, err := h.svc.UpdateSlides(r.Context(), id, *req.Slides)
	switch {
	case errors.Is(err, presentation.ErrNoSlides), errors.Is(err, slide.ErrMissingTitle):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, presentation.ErrNotReady):
		writeError(w, http.StatusConflict, "Presentation not ready for editing")
		return
	case err != nil:
		h.writeLookupError(w, r, err)
		return
	}

	h.logger.Info(r.Context(), "Updated presentation %d with edited slides", id)
	writeJSON(w, http.StatusOK, successResponse{
		Success: true,
		Message: "Presentation updated successfully",
	})
}

// GET /export/{id}/{format}
func (h *handler) exportPresentation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Presentation not found")
		return
	}
	format, err := render.ParseFormat(mux.Vars(r)["format"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid export format")
		return
	}

	path, err := h.svc.Export(r.Context(), id, format)
	switch {
	case errors.Is(err, presentation.ErrNotReady):
		writeError(w, http.StatusBadRequest, "Presentation not ready for export")
		return
	case errors.Is(err, presentation.ErrNotFound):
		writeError(w, http.StatusNotFound, "Presentation not found")
		return
	case err != nil:
		h.logger.Error(r.Context(), "Error exporting presentation %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to export presentation")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		h.logger.Error(r.Context(), "Error opening export %s: %v", path, err)
		writeError(w, http.StatusInternalServerError, "Failed to export presentation")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filepath.Base(path)))
	http.ServeContent(w, r, filepath.Base(path), time.Time{}, f)
}

type statusResponse struct {
	Status string `json:"status"`
	Title  string `json:"title"`
}

// GET /api/presentations/{id}/status
func (h *handler) presentationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Presentation not found")
		return
	}

	status, title, err := h.svc.Status(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: string(status), Title: title})
}

type summary struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	SlideCount int       `json:"slide_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// GET /api/presentations
func (h *handler) listPresentations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "Error listing presentations: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list presentations")
		return
	}

	out := make([]summary, 0, len(list))
	for _, p := range list {
		out = append(out, summary{
			ID:         p.ID,
			Title:      p.Title,
			Status:     string(p.Status),
			SlideCount: len(p.Slides),
			CreatedAt:  p.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"presentations": out})
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, presentation.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Presentation not found")
		return
	}
	h.logger.Error(r.Context(), "Presentation lookup failed: %v", err)
	writeError(w, http.StatusInternalServerError, "An error occurred while processing your request")
}

// sanitizeFilename keeps the base name with only safe characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}
