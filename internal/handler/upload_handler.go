package handlers

import (
	"net/http"
)

func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.Upload.MaxSize+1024)

	if err := r.ParseMultipartForm(h.Cfg.Upload.MaxSize); err != nil {
		WriteError(w, "file too large or malformed upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	result, err := h.UploadService.Upload(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}
