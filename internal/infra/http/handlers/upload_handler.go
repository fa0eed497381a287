package handlers

import (
	"net/http"

	"github.com/xcampos9/imovelhub/internal/infra/http/middleware"
	"github.com/xcampos9/imovelhub/internal/usecase"
)

// UploadHandler sobe mídia avulsa (fotos de imóvel, logo do corretor)
// para o host e devolve a URL pública para o front referenciar.
type UploadHandler struct {
	Uploader usecase.MediaUploader
}

func NewUploadHandler(uploader usecase.MediaUploader) *UploadHandler {
	return &UploadHandler{Uploader: uploader}
}

type UploadResponse struct {
	URL string `json:"url"`
}

// Upload (POST /admin/uploads) aceita multipart com o campo 'arquivo'.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "multipart inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "campo 'arquivo' é obrigatório", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.Uploader.Upload(r.Context(), file, header.Filename)
	if err != nil {
		middleware.RecordIntegrationError("cloudinary")
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error: "falha no upload do arquivo",
			Code:  "UPLOAD_FAILED",
		})
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{URL: url})
}
