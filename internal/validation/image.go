package validation

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

var imageMIMEs = map[string]string{
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
}

// registerImageRules wires the upload rules applied to multipart file fields.
// image_type sniffs the real content type from the bytes, never the
// client-supplied header, and matches it against a space-separated list of
// allowed extensions. image_kb caps the file size in kilobytes.
func registerImageRules(v *validator.Validate) {
	v.RegisterValidation("image_type", validImageType)
	v.RegisterValidation("image_kb", validImageKB)
}

func validImageType(fl validator.FieldLevel) bool {
	file, ok := fl.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	src, err := file.Open()
	if err != nil {
		return false
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return false
	}
	for _, ext := range strings.Fields(fl.Param()) {
		if detected.Is(imageMIMEs[ext]) {
			return true
		}
	}
	return false
}

func validImageKB(fl validator.FieldLevel) bool {
	file, ok := fl.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}
	kb, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return file.Size <= int64(kb)*1024
}
