package importer

import (
	"errors"
	"net/http"

	"github.com/sinaliza/sinaliza-api/internal/config"
)

// Planilhas de catálogo ficam na casa de centenas de linhas; 10 MiB cobre
// com folga.
const maxUploadSize = 10 << 20

type Handler struct {
	service ImportService
}

func NewHandler(service ImportService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ImportCatalog(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.service.ImportCatalog(r.Context(), file)
	if err != nil {
		if errors.Is(err, ErrEmptySheet) {
			http.Error(w, "spreadsheet has no data rows", http.StatusUnprocessableEntity)
			return
		}
		log.WithError(err).Error("Falha ao importar catálogo")
		http.Error(w, "failed to import catalog", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, result)
}
