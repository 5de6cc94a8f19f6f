package questionnaires

import (
	"context"
	"qsights-service/internal/app/models"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionnaireMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireMongoRepository(db *mongo.Client, dbName string) QuestionnaireRepository {
	return &QuestionnaireMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
	}
}

func (r *QuestionnaireMongoRepository) CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	result, err := r.Collection.InsertOne(ctx, questionnaire)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QuestionnaireMongoRepository) FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var questionnaire models.Questionnaire
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (r *QuestionnaireMongoRepository) FindAll(ctx context.Context, status string, page, pageSize int) ([]models.Questionnaire, int, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"updated_at": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	questionnaires := make([]models.Questionnaire, 0, pageSize)
	if err := cursor.All(ctx, &questionnaires); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaires, int(total), nil
}

func (r *QuestionnaireMongoRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	filter := bson.M{"_id": questionnaire.ID}
	update := bson.M{"$set": bson.M{
		"title":       questionnaire.Title,
		"description": questionnaire.Description,
		"status":      questionnaire.Status,
		"version":     questionnaire.Version,
		"questions":   questionnaire.Questions,
		"updated_at":  questionnaire.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *QuestionnaireMongoRepository) DeleteByID(ctx context.Context, questionnaireID string) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
