package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

var (
	_ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.OrderRepository         = (*OrderRepo)(nil)
	_ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)
	_ repository.StatusRepository        = (*StatusRepo)(nil)
)

// findOne decodifica el primer documento; (nil, nil) cuando no hay resultado.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...options.Lister[options.FindOneOptions]) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter, opts...).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

// equalFold filtro de igualdad sin distinguir mayúsculas.
func equalFold(v string) bson.D {
	return bson.D{
		{Key: "$regex", Value: "^" + regexp.QuoteMeta(v) + "$"},
		{Key: "$options", Value: "i"},
	}
}

// ── Establishments ────────────────────────────────────────────────────────────

// EstablishmentRepo colección establishments.
type EstablishmentRepo struct {
	coll *mongo.Collection
}

// NewEstablishmentRepository construye el adaptador.
func NewEstablishmentRepository(db *mongo.Database) *EstablishmentRepo {
	return &EstablishmentRepo{coll: db.Collection(CollectionEstablishments)}
}

func (r *EstablishmentRepo) Create(ctx context.Context, e *entity.Establishment) error {
	if _, err := r.coll.InsertOne(ctx, toEstablishmentDoc(e)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEstablishmentExists
		}
		return fmt.Errorf("insert establishment: %w", err)
	}
	return nil
}

func (r *EstablishmentRepo) get(ctx context.Context, filter bson.D) (*entity.Establishment, error) {
	doc, err := findOne[establishmentDoc](ctx, r.coll, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *EstablishmentRepo) GetByID(ctx context.Context, id string) (*entity.Establishment, error) {
	return r.get(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *EstablishmentRepo) GetByName(ctx context.Context, name string) (*entity.Establishment, error) {
	return r.get(ctx, bson.D{{Key: "name", Value: name}})
}

func (r *EstablishmentRepo) GetByNameAndPhone(ctx context.Context, name string, phone entity.Phone) (*entity.Establishment, error) {
	return r.get(ctx, bson.D{
		{Key: "name", Value: name},
		{Key: "phone.area_code", Value: phone.AreaCode},
		{Key: "phone.number", Value: phone.Number},
	})
}

// ── Users ─────────────────────────────────────────────────────────────────────

// UserRepo colección users.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(CollectionUsers)}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, err := r.coll.InsertOne(ctx, toUserDoc(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) get(ctx context.Context, filter bson.D) (*entity.User, error) {
	doc, err := findOne[userDoc](ctx, r.coll, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.get(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.get(ctx, bson.D{{Key: "email", Value: equalFold(email)}})
}

func (r *UserRepo) GetByName(ctx context.Context, establishmentID, name string) (*entity.User, error) {
	return r.get(ctx, bson.D{{Key: "establishment_id", Value: establishmentID}, {Key: "name", Value: name}})
}

func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	filter := bson.D{}
	if f.EstablishmentID != "" {
		filter = append(filter, bson.E{Key: "establishment_id", Value: f.EstablishmentID})
	}
	if f.Name != "" {
		filter = append(filter, bson.E{Key: "name", Value: f.Name})
	}
	if f.Email != "" {
		filter = append(filter, bson.E{Key: "email", Value: equalFold(f.Email)})
	}
	if f.Customer != nil {
		filter = append(filter, bson.E{Key: "customer", Value: *f.Customer})
	}
	if f.ExcludeID != "" {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: f.ExcludeID}}})
	}
	docs, err := findAll[userDoc](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: u.ID}}, toUserDoc(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ── Products ──────────────────────────────────────────────────────────────────

// ProductRepo colección products.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(CollectionProducts)}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if _, err := r.coll.InsertOne(ctx, toProductDoc(p)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) get(ctx context.Context, filter bson.D) (*entity.Product, error) {
	doc, err := findOne[productDoc](ctx, r.coll, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *ProductRepo) GetByCode(ctx context.Context, establishmentID, code string) (*entity.Product, error) {
	return r.get(ctx, bson.D{{Key: "establishment_id", Value: establishmentID}, {Key: "code", Value: code}})
}

func (r *ProductRepo) GetByName(ctx context.Context, establishmentID, name string) (*entity.Product, error) {
	return r.get(ctx, bson.D{{Key: "establishment_id", Value: establishmentID}, {Key: "name", Value: name}})
}

func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	filter := bson.D{}
	if f.EstablishmentID != "" {
		filter = append(filter, bson.E{Key: "establishment_id", Value: f.EstablishmentID})
	}
	if len(f.IDs) > 0 {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$in", Value: f.IDs}}})
	}
	docs, err := findAll[productDoc](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: p.ID}}, toProductDoc(p))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// ── Orders ────────────────────────────────────────────────────────────────────

// OrderRepo colección orders.
type OrderRepo struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el adaptador.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(CollectionOrders)}
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if _, err := r.coll.InsertOne(ctx, toOrderDoc(o)); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := findOne[orderDoc](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.entity(), nil
}

// orderFilter traduce OrderFilter a bson; el rango de fechas usa $gte/$lte.
func orderFilter(f repository.OrderFilter) bson.D {
	filter := bson.D{}
	add := func(key string, v any) { filter = append(filter, bson.E{Key: key, Value: v}) }
	if f.EstablishmentID != "" {
		add("establishment_id", f.EstablishmentID)
	}
	if f.UserID != "" {
		add("user_id", f.UserID)
	}
	if f.VendorID != "" {
		add("vendor_id", f.VendorID)
	}
	if f.Status != "" {
		add("status", f.Status)
	}
	if f.PaymentMethodID != "" {
		add("payment_method_id", f.PaymentMethodID)
	}
	if f.Value != nil {
		add("value", toDecimal128(*f.Value))
	}
	if f.From != nil || f.To != nil {
		dateFilter := bson.D{}
		if f.From != nil {
			dateFilter = append(dateFilter, bson.E{Key: "$gte", Value: *f.From})
		}
		if f.To != nil {
			dateFilter = append(dateFilter, bson.E{Key: "$lte", Value: *f.To})
		}
		add("order_date", dateFilter)
	}
	return filter
}

func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_date", Value: 1}, {Key: "createdAt", Value: 1}})
	docs, err := findAll[orderDoc](ctx, r.coll, orderFilter(f), opts)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.entity())
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}, {Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}}},
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// ── Lookups ───────────────────────────────────────────────────────────────────

// PaymentMethodRepo colección payment_methods.
type PaymentMethodRepo struct {
	coll *mongo.Collection
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(db *mongo.Database) *PaymentMethodRepo {
	return &PaymentMethodRepo{coll: db.Collection(CollectionPaymentMethods)}
}

func (r *PaymentMethodRepo) Create(ctx context.Context, pm *entity.PaymentMethod) error {
	if _, err := r.coll.InsertOne(ctx, paymentMethodDoc{ID: pm.ID, Name: pm.Name}); err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) get(ctx context.Context, filter bson.D) (*entity.PaymentMethod, error) {
	doc, err := findOne[paymentMethodDoc](ctx, r.coll, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return &entity.PaymentMethod{ID: doc.ID, Name: doc.Name}, nil
}

func (r *PaymentMethodRepo) GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error) {
	return r.get(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *PaymentMethodRepo) GetByName(ctx context.Context, name string) (*entity.PaymentMethod, error) {
	return r.get(ctx, bson.D{{Key: "name", Value: name}})
}

func (r *PaymentMethodRepo) List(ctx context.Context) ([]*entity.PaymentMethod, error) {
	docs, err := findAll[paymentMethodDoc](ctx, r.coll, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.PaymentMethod, 0, len(docs))
	for _, d := range docs {
		out = append(out, &entity.PaymentMethod{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// StatusRepo colección status.
type StatusRepo struct {
	coll *mongo.Collection
}

// NewStatusRepository construye el adaptador.
func NewStatusRepository(db *mongo.Database) *StatusRepo {
	return &StatusRepo{coll: db.Collection(CollectionStatus)}
}

func (r *StatusRepo) Create(ctx context.Context, s *entity.Status) error {
	if _, err := r.coll.InsertOne(ctx, statusDoc{ID: s.ID, Value: s.Value}); err != nil {
		return fmt.Errorf("insert status: %w", err)
	}
	return nil
}

func (r *StatusRepo) GetByID(ctx context.Context, id string) (*entity.Status, error) {
	doc, err := findOne[statusDoc](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
	if err != nil || doc == nil {
		return nil, err
	}
	return &entity.Status{ID: doc.ID, Value: doc.Value}, nil
}

func (r *StatusRepo) List(ctx context.Context) ([]*entity.Status, error) {
	docs, err := findAll[statusDoc](ctx, r.coll, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Status, 0, len(docs))
	for _, d := range docs {
		out = append(out, &entity.Status{ID: d.ID, Value: d.Value})
	}
	return out, nil
}
