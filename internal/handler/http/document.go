package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/document"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/handler/http/response"
	documentservice "github.com/amanaz3/staff-hub-suite-sub001/internal/service/document"
)

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService documentservice.Service
}

func NewDocumentHandler(documentService documentservice.Service) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req := document.UploadRequest{
		EmployeeID: chi.URLParam(r, "id"),
		Category:   r.FormValue("category"),
	}
	if note := r.FormValue("note"); note != "" {
		req.Note = &note
	}

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := h.documentService.Upload(r.Context(), req, file, fileHeader.Filename, contentType, fileHeader.Size)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Document uploaded", doc)
}

func (h *documentHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, docs)
}

func (h *documentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	reader, doc, err := h.documentService.Download(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream document", "document_id", doc.ID, "error", err)
	}
}

func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Document deleted", nil)
}
