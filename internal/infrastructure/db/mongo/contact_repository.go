package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/contactsphere/contacts-system/internal/core/domain"
	"github.com/contactsphere/contacts-system/internal/core/ports"
)

const contactCollection = "contacts"

// ContactRepository persists contacts in MongoDB. Every filter includes the
// owning user_id, so cross-user access is impossible at this layer.
type ContactRepository struct {
	coll *mongo.Collection
	seq  *sequence
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactCollection), seq: newSequence(db)}
}

type mongoContact struct {
	ID             int64     `bson:"_id"`
	UserID         int64     `bson:"user_id"`
	FirstName      string    `bson:"first_name"`
	LastName       string    `bson:"last_name"`
	Email          string    `bson:"email"`
	PhoneNumber    string    `bson:"phone_number"`
	Birthday       time.Time `bson:"birthday,omitempty"`
	AdditionalData string    `bson:"additional_data,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func (c mongoContact) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:             c.ID,
		UserID:         c.UserID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		PhoneNumber:    c.PhoneNumber,
		Birthday:       c.Birthday,
		AdditionalData: c.AdditionalData,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ensureContactIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "_id", Value: 1}}},
	})
	return err
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	id, err := r.seq.Next(ctx, contactCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := mongoContact{
		ID:             id,
		UserID:         contact.UserID,
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Email:          contact.Email,
		PhoneNumber:    contact.PhoneNumber,
		Birthday:       contact.Birthday,
		AdditionalData: contact.AdditionalData,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrContactEmailExists
		}
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) FindByID(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	var doc mongoContact
	err := r.coll.FindOne(ctx, bson.M{"_id": contactID, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) List(ctx context.Context, userID int64, skip, limit int64) ([]*domain.Contact, error) {
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return decodeContacts(ctx, cur)
}

func (r *ContactRepository) All(ctx context.Context, userID int64) ([]*domain.Contact, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	return decodeContacts(ctx, cur)
}

func (r *ContactRepository) Search(ctx context.Context, userID int64, filter ports.ContactFilter) ([]*domain.Contact, error) {
	query := bson.M{"user_id": userID}
	if filter.FirstName != "" {
		query["first_name"] = containsPattern(filter.FirstName)
	}
	if filter.LastName != "" {
		query["last_name"] = containsPattern(filter.LastName)
	}
	if filter.Email != "" {
		query["email"] = containsPattern(filter.Email)
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	return decodeContacts(ctx, cur)
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	update := bson.M{"$set": bson.M{
		"first_name":      contact.FirstName,
		"last_name":       contact.LastName,
		"email":           contact.Email,
		"phone_number":    contact.PhoneNumber,
		"birthday":        contact.Birthday,
		"additional_data": contact.AdditionalData,
		"updated_at":      time.Now().UTC(),
	}}

	var doc mongoContact
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": contact.ID, "user_id": contact.UserID},
		update, opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) Delete(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	var doc mongoContact
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": contactID, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("delete contact: %w", err)
	}
	return doc.toDomain(), nil
}

// containsPattern builds an anchored-nowhere, case-insensitive substring
// match. The input is quoted so user text cannot inject regex syntax.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func decodeContacts(ctx context.Context, cur *mongo.Cursor) ([]*domain.Contact, error) {
	defer cur.Close(ctx)

	contacts := make([]*domain.Contact, 0)
	for cur.Next(ctx) {
		var doc mongoContact
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		contacts = append(contacts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}
