package mongodb

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

type establishmentDoc struct {
	ID        string         `bson:"_id"`
	Name      string         `bson:"name"`
	Address   entity.Address `bson:"address"`
	Phone     entity.Phone   `bson:"phone"`
	CreatedAt time.Time      `bson:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

func toEstablishmentDoc(e *entity.Establishment) establishmentDoc {
	return establishmentDoc{
		ID: e.ID, Name: e.Name, Address: e.Address, Phone: e.Phone,
		CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}
}

func (d establishmentDoc) entity() *entity.Establishment {
	return &entity.Establishment{
		ID: d.ID, Name: d.Name, Address: d.Address, Phone: d.Phone,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type userDoc struct {
	ID              string         `bson:"_id"`
	EstablishmentID string         `bson:"establishment_id,omitempty"`
	Name            string         `bson:"name"`
	Email           string         `bson:"email"`
	Password        string         `bson:"password"`
	Phone           entity.Phone   `bson:"phone"`
	Address         entity.Address `bson:"address"`
	Customer        bool           `bson:"customer"`
	CreatedAt       time.Time      `bson:"createdAt"`
	UpdatedAt       time.Time      `bson:"updatedAt"`
}

func toUserDoc(u *entity.User) userDoc {
	return userDoc{
		ID: u.ID, EstablishmentID: u.EstablishmentID, Name: u.Name, Email: u.Email,
		Password: u.PasswordHash, Phone: u.Phone, Address: u.Address, Customer: u.Customer,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) entity() *entity.User {
	return &entity.User{
		ID: d.ID, EstablishmentID: d.EstablishmentID, Name: d.Name, Email: d.Email,
		PasswordHash: d.Password, Phone: d.Phone, Address: d.Address, Customer: d.Customer,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type productDoc struct {
	ID              string          `bson:"_id"`
	EstablishmentID string          `bson:"establishment_id"`
	Name            string          `bson:"name"`
	Value           bson.Decimal128 `bson:"value"`
	Cost            bson.Decimal128 `bson:"cost"`
	Category        string          `bson:"category"`
	Code            string          `bson:"code"`
	CreatedAt       time.Time       `bson:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt"`
}

func toProductDoc(p *entity.Product) productDoc {
	return productDoc{
		ID: p.ID, EstablishmentID: p.EstablishmentID, Name: p.Name,
		Value: toDecimal128(p.Value), Cost: toDecimal128(p.Cost),
		Category: p.Category, Code: p.Code, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

func (d productDoc) entity() *entity.Product {
	return &entity.Product{
		ID: d.ID, EstablishmentID: d.EstablishmentID, Name: d.Name,
		Value: fromDecimal128(d.Value), Cost: fromDecimal128(d.Cost),
		Category: d.Category, Code: d.Code, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type orderDoc struct {
	ID              string             `bson:"_id"`
	EstablishmentID string             `bson:"establishment_id"`
	Value           bson.Decimal128    `bson:"value"`
	OrderDate       time.Time          `bson:"order_date"`
	Products        []entity.OrderItem `bson:"products"`
	PaymentMethodID string             `bson:"payment_method_id"`
	UserID          string             `bson:"user_id"`
	VendorID        string             `bson:"vendor_id,omitempty"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func toOrderDoc(o *entity.Order) orderDoc {
	products := o.Products
	if products == nil {
		products = []entity.OrderItem{}
	}
	return orderDoc{
		ID: o.ID, EstablishmentID: o.EstablishmentID, Value: toDecimal128(o.Value),
		OrderDate: o.OrderDate, Products: products, PaymentMethodID: o.PaymentMethodID,
		UserID: o.UserID, VendorID: o.VendorID, Status: o.Status,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
	}
}

func (d orderDoc) entity() *entity.Order {
	return &entity.Order{
		ID: d.ID, EstablishmentID: d.EstablishmentID, Value: fromDecimal128(d.Value),
		OrderDate: d.OrderDate, Products: d.Products, PaymentMethodID: d.PaymentMethodID,
		UserID: d.UserID, VendorID: d.VendorID, Status: d.Status,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

type paymentMethodDoc struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

type statusDoc struct {
	ID    string `bson:"_id"`
	Value string `bson:"value"`
}

func toDecimal128(d decimal.Decimal) bson.Decimal128 {
	v, err := bson.ParseDecimal128(d.String())
	if err != nil {
		return bson.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(v bson.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
