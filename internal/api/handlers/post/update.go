package post

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
)

// UpdateHandler handles partial post updates
type UpdateHandler struct {
	service        posts.Service
	maxUploadBytes int64
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service, maxUploadBytes int64) *UpdateHandler {
	return &UpdateHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// updatePostInput is the JSON form of an update; absent fields stay nil
type updatePostInput struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Ingredients json.RawMessage `json:"ingredients"`
}

// HandleUpdate handles PUT /api/v1/posts/{id}
// Accepts multipart/form-data (required to replace the image) or a JSON body.
// Ownership is checked by middleware before this runs.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.ParseIDParam(r, "id")
	if err != nil {
		writeInvalidID(w)
		return
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	fe := handlers.FieldErrors{}
	var req posts.UpdatePostRequest

	switch {
	case mediaType == "multipart/form-data":
		if !parseMultipart(w, r, h.maxUploadBytes) {
			return
		}
		defer cleanupMultipart(r)

		if title, ok := formValue(r.MultipartForm, fieldTitle); ok {
			validateTitle(title, fe)
			req.Title = &title
		}
		if description, ok := formValue(r.MultipartForm, fieldDescription); ok {
			validateDescription(description, fe)
			req.Description = &description
		}
		if raw, ok := formValue(r.MultipartForm, fieldIngredients); ok {
			req.Ingredients = validateIngredients(raw, fe)
		}

		img, file, _ := readImage(r, h.maxUploadBytes, fe)
		if file != nil {
			defer func() { _ = file.Close() }()
		}
		req.Image = img

	case mediaType == "application/json" || mediaType == "":
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

		var input updatePostInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			handlers.WriteValidationError(w, handlers.FieldErrors{"body": {"invalid JSON body"}})
			return
		}

		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			validateTitle(title, fe)
			req.Title = &title
		}
		if input.Description != nil {
			description := strings.TrimSpace(*input.Description)
			validateDescription(description, fe)
			req.Description = &description
		}
		if len(input.Ingredients) > 0 && string(input.Ingredients) != "null" {
			req.Ingredients = ingredientsFromJSON(input.Ingredients, fe)
		}

	default:
		handlers.WriteValidationError(w, handlers.FieldErrors{"body": {"unsupported content type " + mediaType}})
		return
	}

	if len(fe) > 0 {
		handlers.WriteValidationError(w, fe)
		return
	}
	if req.IsEmpty() {
		handlers.WriteValidationError(w, handlers.FieldErrors{"body": {"at least one field must be provided"}})
		return
	}

	view, err := h.service.UpdatePost(r.Context(), postID, req)
	if err != nil {
		handleServiceError(w, r, "update", err)
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "post updated", view)
}

// ingredientsFromJSON accepts ingredients either as a JSON-encoded string,
// matching the multipart form, or as a native JSON value
func ingredientsFromJSON(raw json.RawMessage, fe handlers.FieldErrors) json.RawMessage {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		return validateIngredients(encoded, fe)
	} else if errors.As(err, new(*json.UnmarshalTypeError)) {
		return validateIngredients(string(raw), fe)
	}
	fe.Add(fieldIngredients, "ingredients must be valid JSON")
	return nil
}
