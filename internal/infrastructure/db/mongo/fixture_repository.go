package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mockleague/league-api/internal/core/domain"
)

const fixturesCollection = "fixtures"

// FixtureRepository implements ports.FixtureRepository on MongoDB.
type FixtureRepository struct {
	coll *mongo.Collection
}

func NewFixtureRepository(db *mongo.Database) *FixtureRepository {
	return &FixtureRepository{coll: db.Collection(fixturesCollection)}
}

func (r *FixtureRepository) Create(ctx context.Context, fixture *domain.Fixture) (*domain.Fixture, error) {
	created := *fixture
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrFixtureExists
		}
		return nil, fmt.Errorf("insert fixture: %w", err)
	}
	return &created, nil
}

func (r *FixtureRepository) FindByID(ctx context.Context, id string) (*domain.Fixture, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *FixtureRepository) FindByTeams(ctx context.Context, homeTeam, awayTeam string) (*domain.Fixture, error) {
	return r.findOne(ctx, bson.M{"home_team": homeTeam, "away_team": awayTeam})
}

func (r *FixtureRepository) FindByKey(ctx context.Context, key string) (*domain.Fixture, error) {
	return r.findOne(ctx, bson.M{"key": key})
}

func (r *FixtureRepository) findOne(ctx context.Context, filter bson.M) (*domain.Fixture, error) {
	var fixture domain.Fixture
	if err := r.coll.FindOne(ctx, filter).Decode(&fixture); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFixtureNotFound
		}
		return nil, fmt.Errorf("find fixture: %w", err)
	}
	return &fixture, nil
}

func (r *FixtureRepository) Update(ctx context.Context, fixture *domain.Fixture) (*domain.Fixture, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": fixture.ID}, fixture)
	if err != nil {
		return nil, fmt.Errorf("update fixture: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFixtureNotFound
	}
	return fixture, nil
}

func (r *FixtureRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFixtureNotFound
	}
	return nil
}

func (r *FixtureRepository) List(ctx context.Context, status domain.FixtureStatus) ([]domain.Fixture, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "schedule.match_day", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	defer cur.Close(ctx)

	var fixtures []domain.Fixture
	if err := cur.All(ctx, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return fixtures, nil
}

func (r *FixtureRepository) CountByTeam(ctx context.Context, teamID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{
		"$or": []bson.M{
			{"home_team": teamID},
			{"away_team": teamID},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("count fixtures by team: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the unique key index and the unique pairing index.
func (r *FixtureRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "home_team", Value: 1}, {Key: "away_team", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
