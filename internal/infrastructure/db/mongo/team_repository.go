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

const teamsCollection = "teams"

// TeamRepository implements ports.TeamRepository on MongoDB. Document ids
// are ObjectID hex strings generated at insert time so the domain type can
// carry them as plain strings.
type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(teamsCollection)}
}

func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	created := *team
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}
	return &created, nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	var team domain.Team
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&team); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	return &team, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTeamExists
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTeamNotFound
	}
	return team, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.Team, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "acronym", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer cur.Close(ctx)

	var teams []domain.Team
	if err := cur.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	return teams, nil
}

// EnsureIndexes creates the unique acronym index.
func (r *TeamRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "acronym", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
