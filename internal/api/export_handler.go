package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/api/shared"
	"github.com/uismith/uismith-api/internal/redact"
	"github.com/uismith/uismith-api/internal/service"
)

// ExportHandler handles component archive download requests
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// Download handles GET /api/export/download/{id} requests. It builds the
// component archive and streams it as an attachment; the archive's
// workspace is removed once the transfer finishes, whether or not the
// client received the full body.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	componentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid component ID")
		return
	}

	archive, err := h.exportService.Export(r.Context(), componentID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	defer func() { _ = archive.Close() }()

	w.Header().Set("Content-Type", "application/zip")
	w.Header().
		Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ArchiveFileName))
	w.Header().Set("Content-Length", strconv.FormatInt(archive.Size(), 10))

	if _, err := archive.WriteTo(w); err != nil {
		// Headers are already on the wire; all we can do is log.
		slog.Error("failed to stream export archive",
			"error", redact.Error(err),
			"component_id", componentID)
	}
}
