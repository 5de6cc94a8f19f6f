package models

import (
	"qsights-service/internal/pkg/branching"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Questionnaire struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Status      string               `bson:"status" json:"status"`
	Version     int                  `bson:"version" json:"version"`
	Questions   []branching.Question `bson:"questions" json:"questions"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}
