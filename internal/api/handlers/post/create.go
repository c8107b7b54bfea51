package post

import (
	"net/http"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/api/middleware"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
	"github.com/naatiworlds/Recetagrm-api/internal/logger"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service        posts.Service
	maxUploadBytes int64
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service, maxUploadBytes int64) *CreateHandler {
	return &CreateHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleCreate handles POST /api/v1/posts
// Multipart fields: title, description, imagen (file), ingredients (JSON string).
// Every field is validated before the image is uploaded.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	if !parseMultipart(w, r, h.maxUploadBytes) {
		return
	}
	defer cleanupMultipart(r)

	fe := handlers.FieldErrors{}

	title, _ := formValue(r.MultipartForm, fieldTitle)
	validateTitle(title, fe)

	description, _ := formValue(r.MultipartForm, fieldDescription)
	validateDescription(description, fe)

	var req posts.CreatePostRequest
	if raw, ok := formValue(r.MultipartForm, fieldIngredients); !ok || raw == "" {
		fe.Add(fieldIngredients, "ingredients is required")
	} else {
		req.Ingredients = validateIngredients(raw, fe)
	}

	img, file, present := readImage(r, h.maxUploadBytes, fe)
	if file != nil {
		defer func() { _ = file.Close() }()
	}
	if !present {
		fe.Add(fieldImage, "image is required")
	}

	if len(fe) > 0 {
		logger.WarnWithFields("post create rejected", logger.Fields{
			"user_id": userID,
			"fields":  fe,
		})
		handlers.WriteValidationError(w, fe)
		return
	}

	req.Title = title
	req.Description = description
	req.Image = img

	view, err := h.service.CreatePost(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, r, "create", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusCreated, "post created", view)
}
