// mongo.go - MongoDB implementation of Store

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"karigar-backend/models"
)

var _ Store = (*MongoStore)(nil)

type MongoStore struct {
	products *mongo.Collection
	users    *mongo.Collection
	works    *mongo.Collection
	bookings *mongo.Collection
	counters *mongo.Collection
}

// Connect dials MongoDB and returns a store over the named database. A unique
// index on users.email backs the duplicate-signup check.
func Connect(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	db := client.Database(dbName)
	s := &MongoStore{
		products: db.Collection("products"),
		users:    db.Collection("users"),
		works:    db.Collection("works"),
		bookings: db.Collection("bookings"),
		counters: db.Collection("counters"),
	}
	_, err = s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// nextID atomically increments the named counter and returns the new value.
// The upsert makes the first allocation start at 1.
func (s *MongoStore) nextID(ctx context.Context, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// ----- Products -----

func (s *MongoStore) CreateProduct(ctx context.Context, p *models.Product) error {
	id, err := s.nextID(ctx, "products")
	if err != nil {
		return err
	}
	p.ID = id
	p.Date = time.Now()
	p.Available = true
	res, err := s.products.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.OID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStore) DeleteProductByID(ctx context.Context, id int) error {
	res, err := s.products.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.findProducts(ctx, options.Find().SetSort(bson.M{"id": -1}))
}

func (s *MongoStore) ListProductsByInsertion(ctx context.Context) ([]models.Product, error) {
	return s.findProducts(ctx, options.Find())
}

func (s *MongoStore) findProducts(ctx context.Context, opts *options.FindOptions) ([]models.Product, error) {
	cur, err := s.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoStore) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := s.products.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ----- Users -----

func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) error {
	u.Date = time.Now()
	res, err := s.users.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var u models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) UpdateUserCart(ctx context.Context, id string, cart map[string]int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"cartData": cart}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- Works -----

func (s *MongoStore) CreateWork(ctx context.Context, w *models.Work) error {
	id, err := s.nextID(ctx, "works")
	if err != nil {
		return err
	}
	w.ID = id
	w.Date = time.Now()
	if w.Proposals == nil {
		w.Proposals = []models.Proposal{}
	}
	res, err := s.works.InsertOne(ctx, w)
	if err != nil {
		return err
	}
	w.OID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStore) ListWorksExcluding(ctx context.Context, userID string) ([]models.Work, error) {
	return s.findWorks(ctx, bson.M{"posted_by": bson.M{"$ne": userID}})
}

func (s *MongoStore) ListWorksBy(ctx context.Context, userID string) ([]models.Work, error) {
	return s.findWorks(ctx, bson.M{"posted_by": userID})
}

func (s *MongoStore) findWorks(ctx context.Context, filter bson.M) ([]models.Work, error) {
	cur, err := s.works.Find(ctx, filter, options.Find().SetSort(bson.M{"id": -1}))
	if err != nil {
		return nil, err
	}
	works := []models.Work{}
	if err := cur.All(ctx, &works); err != nil {
		return nil, err
	}
	return works, nil
}

func (s *MongoStore) GetWorkByID(ctx context.Context, id int) (*models.Work, error) {
	var w models.Work
	err := s.works.FindOne(ctx, bson.M{"id": id}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *MongoStore) DeleteWorkByID(ctx context.Context, id int) error {
	res, err := s.works.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddProposal appends the proposal only when no existing proposal on the work
// carries the same sender email or phone. The guard lives in the update
// filter, so concurrent submissions cannot both slip through.
func (s *MongoStore) AddProposal(ctx context.Context, workID int, p models.Proposal) (*models.Work, error) {
	p.Date = time.Now()
	filter := bson.M{
		"id": workID,
		"proposals": bson.M{"$not": bson.M{"$elemMatch": bson.M{"$or": []bson.M{
			{"senderEmail": p.SenderEmail},
			{"senderPhone": p.SenderPhone},
		}}}},
	}
	res, err := s.works.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"proposals": p}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		// Either the work does not exist, or the sender already proposed.
		if _, err := s.GetWorkByID(ctx, workID); err != nil {
			return nil, err
		}
		return nil, ErrDuplicateProposal
	}
	return s.GetWorkByID(ctx, workID)
}

// ----- Bookings -----

func (s *MongoStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	res, err := s.bookings.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	cur, err := s.bookings.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	bookings := []models.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
