package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/courtbook/internal/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDocument is the stored shape of a user in the users collection.
type userDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FirstName       string             `bson:"firstName"`
	LastName        string             `bson:"lastName"`
	Username        string             `bson:"username"`
	Email           string             `bson:"email"`
	Password        string             `bson:"password"`
	Age             int                `bson:"age"`
	City            string             `bson:"city"`
	State           string             `bson:"state"`
	Zip             string             `bson:"zip"`
	ExperienceLevel string             `bson:"experience_level"`
	Image           string             `bson:"image"`
	Owner           bool               `bson:"owner"`
	Reviews         []reviewDocument   `bson:"reviews"`
	History         []bookingDocument  `bson:"history"`
	OverallRating   float64            `bson:"overallRating"`
}

type reviewDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	ReviewerID string             `bson:"reviewer_id"`
	RevieweeID string             `bson:"reviewee_id"`
	Rating     float64            `bson:"rating"`
	Comment    string             `bson:"comment"`
}

type bookingDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	CourtID   string             `bson:"court_id"`
	Date      string             `bson:"date"`
	StartTime string             `bson:"startTime"`
	EndTime   string             `bson:"endTime"`
}

// toUser is the single place where store identifiers become strings.
func toUser(d *userDocument) *User {
	u := &User{
		ID:              d.ID.Hex(),
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Username:        d.Username,
		Email:           d.Email,
		PasswordHash:    d.Password,
		Age:             d.Age,
		City:            d.City,
		State:           d.State,
		Zip:             d.Zip,
		ExperienceLevel: d.ExperienceLevel,
		Image:           d.Image,
		Role:            RoleUser,
		Reviews:         make([]Review, 0, len(d.Reviews)),
		History:         make([]Booking, 0, len(d.History)),
		OverallRating:   d.OverallRating,
	}
	if d.Owner {
		u.Role = RoleOwner
	}
	for _, r := range d.Reviews {
		u.Reviews = append(u.Reviews, Review{
			ID:         r.ID.Hex(),
			ReviewerID: r.ReviewerID,
			RevieweeID: r.RevieweeID,
			Rating:     r.Rating,
			Comment:    r.Comment,
		})
	}
	for _, b := range d.History {
		u.History = append(u.History, Booking{
			ID:        b.ID.Hex(),
			CourtID:   b.CourtID,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	return u
}

// newUserDocument builds the document inserted on registration. Reviews and
// history always start as empty arrays.
func newUserDocument(u *User) *userDocument {
	return &userDocument{
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Username:        u.Username,
		Email:           u.Email,
		Password:        u.PasswordHash,
		Age:             u.Age,
		City:            u.City,
		State:           u.State,
		Zip:             u.Zip,
		ExperienceLevel: u.ExperienceLevel,
		Image:           u.Image,
		Owner:           u.Role.IsOwner(),
		Reviews:         []reviewDocument{},
		History:         []bookingDocument{},
		OverallRating:   0,
	}
}

// profileUpdate leaves the password and the owner flag untouched.
func profileUpdate(u *User) bson.M {
	return bson.M{
		"firstName":        u.FirstName,
		"lastName":         u.LastName,
		"username":         u.Username,
		"email":            u.Email,
		"age":              u.Age,
		"city":             u.City,
		"state":            u.State,
		"zip":              u.Zip,
		"experience_level": u.ExperienceLevel,
		"image":            u.Image,
	}
}

// prefixRegex matches values starting with prefix, ignoring case. The
// prefix is matched literally.
func prefixRegex(prefix string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix), Options: "i"}
}

// MongoRepository stores users in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, u *User) (*User, error) {
	res, err := r.coll.InsertOne(ctx, newUserDocument(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: username or email is already registered", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok || id.IsZero() {
		return nil, fmt.Errorf("%w: could not add user", common.ErrNotAcknowledged)
	}
	return r.GetByID(ctx, id.Hex())
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: no user found", common.ErrNotFound)
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) FindByUsernamePrefix(ctx context.Context, prefix string) (*User, error) {
	return r.findOne(ctx, bson.M{"username": prefixRegex(prefix)},
		options.FindOne().SetSort(bson.D{{Key: "username", Value: 1}}))
}

func (r *MongoRepository) FindByName(ctx context.Context, firstName, lastName string) ([]User, error) {
	return r.find(ctx, bson.M{
		"firstName": prefixRegex(firstName),
		"lastName":  prefixRegex(lastName),
	})
}

func (r *MongoRepository) List(ctx context.Context) ([]User, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoRepository) ExistsUsername(ctx context.Context, username, exceptID string) (bool, error) {
	return r.exists(ctx, "username", username, exceptID)
}

func (r *MongoRepository) ExistsEmail(ctx context.Context, email, exceptID string) (bool, error) {
	return r.exists(ctx, "email", email, exceptID)
}

func (r *MongoRepository) Update(ctx context.Context, id string, u *User) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: update failed", common.ErrNotFound)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": profileUpdate(u)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: update failed", common.ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: another user has this username or email", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return toUser(&doc), nil
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("username_unique")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter any, opts ...*options.FindOneOptions) (*User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: no user found", common.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return toUser(&doc), nil
}

func (r *MongoRepository) find(ctx context.Context, filter any) ([]User, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	out := make([]User, 0, len(docs))
	for i := range docs {
		out = append(out, *toUser(&docs[i]))
	}
	return out, nil
}

func (r *MongoRepository) exists(ctx context.Context, field, value, exceptID string) (bool, error) {
	filter := bson.M{field: value}
	if exceptID != "" {
		oid, err := primitive.ObjectIDFromHex(exceptID)
		if err != nil {
			return false, fmt.Errorf("%w: invalid id %q", common.ErrValidation, exceptID)
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.coll.FindOne(ctx, filter, opts).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, fmt.Errorf("error checking %s: %w", field, err)
}
