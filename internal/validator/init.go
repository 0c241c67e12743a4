package validator

import (
	"ctchen222/Five-In-A-Row/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("boardrow", isBoardRow); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// isBoardRow accepts one encoded board row: BoardSize cells of '.', 'X' or 'O'.
func isBoardRow(fl validator.FieldLevel) bool {
	row := fl.Field().String()
	if len(row) != game.BoardSize {
		return false
	}
	for i := 0; i < len(row); i++ {
		switch row[i] {
		case '.', 'X', 'O':
		default:
			return false
		}
	}
	return true
}
