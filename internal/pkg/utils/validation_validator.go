package utils

import (
	"qsights-service/internal/pkg/branching"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("logic_action", validateLogicAction)
	validate.RegisterValidation("logic_combinator", validateLogicCombinator)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateQuestionType(fl validator.FieldLevel) bool {
	switch branching.QuestionType(fl.Field().String()) {
	case branching.QuestionTypeMCQ, branching.QuestionTypeMulti, branching.QuestionTypeBoolean,
		branching.QuestionTypeText, branching.QuestionTypeTextarea, branching.QuestionTypeEmail,
		branching.QuestionTypeNumber, branching.QuestionTypeSlider, branching.QuestionTypeRating,
		branching.QuestionTypeScale:
		return true
	}
	return false
}

func validateLogicAction(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == branching.ActionShow || value == branching.ActionHide
}

func validateLogicCombinator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == branching.CombinatorAnd || value == branching.CombinatorOr
}
