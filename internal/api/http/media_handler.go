package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"inmogestion-backend/internal/service"
	"inmogestion-backend/internal/storage"
)

// MediaHandler streams listing photos and documents in and out of the file
// store and keeps the listing's media references in sync.
type MediaHandler struct {
	fileStore      storage.FileStore
	listingService service.ListingService
}

func NewMediaHandler(fileStore storage.FileStore, listingService service.ListingService) *MediaHandler {
	return &MediaHandler{fileStore: fileStore, listingService: listingService}
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listingID := vars["id"]
	kind, ok := mediaKind(vars["kind"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "media kind must be photos or docs"})
		return
	}
	filename := vars["filename"]

	// The listing must exist before any bytes hit the disk.
	if _, err := h.listingService.GetListing(r.Context(), listingID); err != nil {
		writeError(w, err)
		return
	}

	url, err := h.fileStore.Save(r.Context(), listingID, kind, filename, r.Body)
	if err != nil {
		if errors.Is(err, storage.ErrBadFilename) || errors.Is(err, storage.ErrFileTooLarge) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeError(w, err)
		return
	}

	var photoRefs, docRefs []string
	if kind == storage.MediaKindPhoto {
		photoRefs = []string{filename}
	} else {
		docRefs = []string{filename}
	}
	listing, err := h.listingService.AttachMedia(r.Context(), listingID, photoRefs, docRefs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"url":     url,
		"listing": listing,
	})
}

func (h *MediaHandler) Download(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind, ok := mediaKind(vars["kind"])
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "media kind must be photos or docs"})
		return
	}
	filename := vars["filename"]

	file, err := h.fileStore.Open(r.Context(), vars["id"], kind, filename)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrBadFilename) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "file not found"})
			return
		}
		writeError(w, err)
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}

func mediaKind(raw string) (storage.MediaKind, bool) {
	switch storage.MediaKind(raw) {
	case storage.MediaKindPhoto:
		return storage.MediaKindPhoto, true
	case storage.MediaKindDocument:
		return storage.MediaKindDocument, true
	}
	return "", false
}
