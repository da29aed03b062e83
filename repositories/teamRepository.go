package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nagarsetu-be/errs"
	"nagarsetu-be/models"
)

// TeamRepository resolves municipal teams. TeamsForCity is the assignment
// lookup: exact city match, active teams only, no cross-city fallback.
type TeamRepository interface {
	TeamsForCity(ctx context.Context, city string) ([]models.MunicipalTeam, error)
	FindByEmail(ctx context.Context, email string) (*models.MunicipalTeam, error)
	FindByID(ctx context.Context, id string) (*models.MunicipalTeam, error)
}

// MongoTeamRepository implements TeamRepository on the municipal_teams
// collection.
type MongoTeamRepository struct {
	coll *mongo.Collection
}

func NewMongoTeamRepository(coll *mongo.Collection) *MongoTeamRepository {
	return &MongoTeamRepository{coll: coll}
}

func (r *MongoTeamRepository) TeamsForCity(ctx context.Context, city string) ([]models.MunicipalTeam, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"cityName": city, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("%w: find teams: %v", errs.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var teams []models.MunicipalTeam
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("%w: decode teams: %v", errs.ErrStoreUnavailable, err)
	}
	return teams, nil
}

func (r *MongoTeamRepository) FindByEmail(ctx context.Context, email string) (*models.MunicipalTeam, error) {
	var team models.MunicipalTeam
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: team %s", errs.ErrNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find team: %v", errs.ErrStoreUnavailable, err)
	}
	return &team, nil
}

func (r *MongoTeamRepository) FindByID(ctx context.Context, id string) (*models.MunicipalTeam, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid team id %q", errs.ErrInvalidInput, id)
	}

	var team models.MunicipalTeam
	err = r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&team)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: team %s", errs.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find team: %v", errs.ErrStoreUnavailable, err)
	}
	return &team, nil
}
