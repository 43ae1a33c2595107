package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const MaxTitleLength = 100

// InitValidator registers custom rules on gin's binding validator.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notetitle", ValidateNoteTitleRule)
	}
}

func ValidateNoteTitleRule(fl validator.FieldLevel) bool {
	return ValidateNoteTitle(fl.Field().String())
}

// ValidateNoteTitle bounds titles the same way the editor does before
// saving. Empty titles are allowed; the store defaults them.
func ValidateNoteTitle(title string) bool {
	return len(title) <= MaxTitleLength
}
