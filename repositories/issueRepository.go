// Package repositories wraps the MongoDB collections behind small interfaces
// so the service layer can be exercised against fakes.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nagarsetu-be/errs"
	"nagarsetu-be/models"
)

// IssueFilter narrows a listing. Every set field is an exact match; zero
// values impose no constraint.
type IssueFilter struct {
	Status         models.IssueStatus
	State          string
	City           string
	AssignedTeamID string
	ReporterID     string
	WithCoords     bool // only issues carrying resolved coordinates
	Limit          int64
}

// IssueRepository is the persistence contract for issues. Find always
// returns newest-first. Update replaces the mutable fields of an existing
// issue wholesale; the backing store's native update semantics are the sole
// consistency mechanism (last writer wins).
type IssueRepository interface {
	Insert(ctx context.Context, issue *models.Issue) error
	Find(ctx context.Context, filter IssueFilter) ([]models.Issue, error)
	FindByID(ctx context.Context, id string) (*models.Issue, error)
	Update(ctx context.Context, issue *models.Issue) error
}

// MongoIssueRepository implements IssueRepository on the issues collection.
type MongoIssueRepository struct {
	coll *mongo.Collection
}

func NewMongoIssueRepository(coll *mongo.Collection) *MongoIssueRepository {
	return &MongoIssueRepository{coll: coll}
}

func (r *MongoIssueRepository) Insert(ctx context.Context, issue *models.Issue) error {
	if issue.ID.IsZero() {
		issue.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, issue); err != nil {
		return fmt.Errorf("%w: insert issue: %v", errs.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *MongoIssueRepository) Find(ctx context.Context, filter IssueFilter) ([]models.Issue, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.AssignedTeamID != "" {
		query["assignedTeamId"] = filter.AssignedTeamID
	}
	if filter.ReporterID != "" {
		query["reporterId"] = filter.ReporterID
	}
	if filter.WithCoords {
		query["latitude"] = bson.M{"$exists": true, "$ne": nil}
		query["longitude"] = bson.M{"$exists": true, "$ne": nil}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find issues: %v", errs.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, fmt.Errorf("%w: decode issues: %v", errs.ErrStoreUnavailable, err)
	}
	return issues, nil
}

func (r *MongoIssueRepository) FindByID(ctx context.Context, id string) (*models.Issue, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid issue id %q", errs.ErrInvalidInput, id)
	}

	var issue models.Issue
	err = r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&issue)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: issue %s", errs.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find issue: %v", errs.ErrStoreUnavailable, err)
	}
	return &issue, nil
}

func (r *MongoIssueRepository) Update(ctx context.Context, issue *models.Issue) error {
	update := bson.M{
		"$set": bson.M{
			"status":          issue.Status,
			"resolutionNotes": issue.ResolutionNotes,
			"resolvedAt":      issue.ResolvedAt,
			"updatedAt":       issue.UpdatedAt,
		},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": issue.ID}, update)
	if err != nil {
		return fmt.Errorf("%w: update issue: %v", errs.ErrStoreUnavailable, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: issue %s", errs.ErrNotFound, issue.ID.Hex())
	}
	return nil
}
