package handlers

import (
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators installs the binding rules the handlers rely on.
// Must run once before the routes are registered.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// pdffile: the uploaded filename must end in ".pdf". Matches the
	// case-sensitive check in the journal service so both layers agree.
	_ = v.RegisterValidation("pdffile", func(fl validator.FieldLevel) bool {
		switch header := fl.Field().Interface().(type) {
		case multipart.FileHeader:
			return strings.HasSuffix(header.Filename, ".pdf")
		case *multipart.FileHeader:
			return header != nil && strings.HasSuffix(header.Filename, ".pdf")
		default:
			return false
		}
	})
}
