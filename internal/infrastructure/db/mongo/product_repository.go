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

	"github.com/mycart/commerce-api/internal/core/domain"
)

const productCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

type mongoPicture struct {
	OriginalFile string `bson:"original_file,omitempty"`
	Path         string `bson:"path,omitempty"`
	URL          string `bson:"url,omitempty"`
}

type mongoProduct struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Price      float64            `bson:"price"`
	OldPrice   float64            `bson:"old_price"`
	PictureURL string             `bson:"picture_url,omitempty"`
	Picture    *mongoPicture      `bson:"picture,omitempty"`
}

func toMongoProduct(p *domain.Product) mongoProduct {
	doc := mongoProduct{
		Name:       p.Name,
		Price:      p.Price,
		OldPrice:   p.OldPrice,
		PictureURL: p.PictureURL,
	}
	if p.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
			doc.ID = oid
		}
	}
	if p.Picture != nil {
		doc.Picture = &mongoPicture{
			OriginalFile: p.Picture.OriginalFile,
			Path:         p.Picture.Path,
			URL:          p.Picture.URL,
		}
	}
	return doc
}

func (m mongoProduct) toDomain() domain.Product {
	p := domain.Product{
		ID:         m.ID.Hex(),
		Name:       m.Name,
		Price:      m.Price,
		OldPrice:   m.OldPrice,
		PictureURL: m.PictureURL,
	}
	if m.Picture != nil {
		p.Picture = &domain.Picture{
			OriginalFile: m.Picture.OriginalFile,
			Path:         m.Picture.Path,
			URL:          m.Picture.URL,
		}
	}
	return p
}

// Insert creates a product. A unique-index violation on the name comes back
// as domain.ErrProductNameTaken.
func (r *ProductRepository) Insert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := toMongoProduct(product)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProductNameTaken
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := doc.toDomain()
	return &created, nil
}

// FindByID retrieves a product by hex id. Malformed ids are reported the
// same way as missing documents.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	for cursor.Next(ctx) {
		var doc mongoProduct
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// SetPicture records the upload metadata and the derived URL on the product.
func (r *ProductRepository) SetPicture(ctx context.Context, id, originalFile, path, url string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	update := bson.M{"$set": bson.M{
		"picture": mongoPicture{OriginalFile: originalFile, Path: path, URL: url},
		// pictureUrl is what list and detail responses expose
		"picture_url": url,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("set picture: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DeleteAll wipes the catalog. Used by the seeder.
func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

// EnsureIndexes creates the unique index on the product name.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
