package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"academic-assistant/internal/domain"
)

// multipartMemory is how much of a multipart body is buffered in memory
// before parts spill to temporary files.
const multipartMemory = 32 << 20

// SynthesisHandler handles multi-PDF literature synthesis uploads.
type SynthesisHandler struct {
	credentials domain.CredentialService
	synthesis   domain.SynthesisService
	logger      domain.Logger
}

// NewSynthesisHandler creates a new synthesis handler
func NewSynthesisHandler(credentials domain.CredentialService, synthesis domain.SynthesisService, logger domain.Logger) *SynthesisHandler {
	return &SynthesisHandler{
		credentials: credentials,
		synthesis:   synthesis,
		logger:      logger,
	}
}

// Upload accepts the repeated multipart field "files".
func (h *SynthesisHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// A missing key is reported before anything about the upload itself.
	if _, err := h.credentials.APIKey(r.Context()); err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, requestTooLargeMessage)
			return
		}
		if !errors.Is(err, http.ErrNotMultipart) {
			h.logger.Warn("Failed to parse multipart form", "error", err)
		}
		writeError(w, http.StatusBadRequest, "Tidak ada file yang diupload")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("Failed to remove multipart temp files", "error", err)
		}
	}()

	headers, ok := r.MultipartForm.File["files"]
	if !ok {
		writeError(w, http.StatusBadRequest, "Tidak ada file yang diupload")
		return
	}

	files, closeAll, err := openUploads(headers)
	defer closeAll()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", err)
		writeError(w, http.StatusBadRequest, "Gagal membaca file upload")
		return
	}

	result, err := h.synthesis.Synthesize(r.Context(), files)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func openUploads(headers []*multipart.FileHeader) ([]domain.UploadedFile, func(), error) {
	files := make([]domain.UploadedFile, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		files = append(files, domain.UploadedFile{Filename: fh.Filename, Content: f})
	}
	return files, closeAll, nil
}
