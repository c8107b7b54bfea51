package post

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/naatiworlds/Recetagrm-api/internal/api/handlers"
	"github.com/naatiworlds/Recetagrm-api/internal/core/posts"
)

const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldImage       = "imagen"
	fieldIngredients = "ingredients"

	maxTitleLength = 255

	// multipart bodies may exceed the image limit by the text fields and boundaries
	formOverhead = 1 << 20

	// maxJSONBody caps JSON update bodies
	maxJSONBody = 1 << 20
)

var (
	errIngredientsEncoding = errors.New("ingredients must be valid UTF-8")
	errIngredientsShape    = errors.New("ingredients must be a JSON array or object")
)

// decodeIngredients validates a JSON-encoded ingredients list and compacts it.
// Scalars are rejected; the value must be an array or an object.
func decodeIngredients(raw string) (json.RawMessage, error) {
	raw = strings.TrimSpace(raw)
	if !utf8.ValidString(raw) {
		return nil, errIngredientsEncoding
	}
	if raw == "" || (raw[0] != '[' && raw[0] != '{') {
		return nil, errIngredientsShape
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func validateTitle(title string, fe handlers.FieldErrors) {
	switch {
	case title == "":
		fe.Add(fieldTitle, "title is required")
	case !utf8.ValidString(title):
		fe.Add(fieldTitle, "title must be valid UTF-8")
	case utf8.RuneCountInString(title) > maxTitleLength:
		fe.Add(fieldTitle, fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	}
}

func validateDescription(description string, fe handlers.FieldErrors) {
	switch {
	case description == "":
		fe.Add(fieldDescription, "description is required")
	case !utf8.ValidString(description):
		fe.Add(fieldDescription, "description must be valid UTF-8")
	}
}

func validateIngredients(raw string, fe handlers.FieldErrors) json.RawMessage {
	ingredients, err := decodeIngredients(raw)
	switch {
	case errors.Is(err, errIngredientsEncoding), errors.Is(err, errIngredientsShape):
		fe.Add(fieldIngredients, err.Error())
		return nil
	case err != nil:
		fe.Add(fieldIngredients, "ingredients must be valid JSON")
		return nil
	}
	return ingredients
}

// parseMultipart parses a multipart body capped at the image limit plus overhead.
// It reports false after writing a 422 when the form cannot be read.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+formOverhead)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.WriteValidationError(w, handlers.FieldErrors{
				fieldImage: {fmt.Sprintf("image must be at most %d bytes", maxUploadBytes)},
			})
			return false
		}
		handlers.WriteValidationError(w, handlers.FieldErrors{"body": {"expected a multipart/form-data body"}})
		return false
	}
	return true
}

// cleanupMultipart removes temp files written by ParseMultipartForm
func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

// formValue returns the trimmed field value and whether the field was sent at all
func formValue(form *multipart.Form, name string) (string, bool) {
	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[0]), true
}

// readImage opens the uploaded image, checks its size and sniffed MIME type.
// present is false when no file was sent. The returned file must be closed by the caller.
func readImage(r *http.Request, maxUploadBytes int64, fe handlers.FieldErrors) (img *posts.ImageFile, file multipart.File, present bool) {
	file, header, err := r.FormFile(fieldImage)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, false
	}
	if err != nil {
		fe.Add(fieldImage, "could not read uploaded image")
		return nil, nil, true
	}

	if header.Size > maxUploadBytes {
		_ = file.Close()
		fe.Add(fieldImage, fmt.Sprintf("image must be at most %d bytes", maxUploadBytes))
		return nil, nil, true
	}

	sniff := make([]byte, 512)
	n, _ := io.ReadFull(file, sniff)
	contentType := http.DetectContentType(sniff[:n])
	if !strings.HasPrefix(contentType, "image/") {
		_ = file.Close()
		fe.Add(fieldImage, "file must be an image")
		return nil, nil, true
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		_ = file.Close()
		fe.Add(fieldImage, "could not read uploaded image")
		return nil, nil, true
	}

	return &posts.ImageFile{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	}, file, true
}
