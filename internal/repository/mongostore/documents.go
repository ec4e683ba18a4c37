package mongostore

import (
	"time"

	"github.com/sportshop-next/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type productDoc struct {
	ID          int64                `bson:"_id"`
	Name        string               `bson:"name"`
	Category    string               `bson:"category"`
	Brand       string               `bson:"brand"`
	Description string               `bson:"description"`
	Image       string               `bson:"image"`
	Price       primitive.Decimal128 `bson:"price"`
	Stock       *int                 `bson:"stock,omitempty"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
	DeletedAt   *time.Time           `bson:"deleted_at"`
}

type cartItemDoc struct {
	ID        int64     `bson:"id"`
	ProductID int64     `bson:"product_id"`
	Quantity  int       `bson:"quantity"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type cartDoc struct {
	ID        int64         `bson:"_id"`
	UserID    int64         `bson:"user_id"`
	Items     []cartItemDoc `bson:"items"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

type orderItemDoc struct {
	ID        int64                `bson:"id"`
	ProductID int64                `bson:"product_id"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
	Quantity  int                  `bson:"quantity"`
	Image     string               `bson:"image"`
}

type addressDoc struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zip_code"`
	Country string `bson:"country"`
}

type paymentResultDoc struct {
	ID           string `bson:"id"`
	Status       string `bson:"status"`
	UpdateTime   string `bson:"update_time"`
	EmailAddress string `bson:"email_address"`
}

type orderDoc struct {
	ID              int64                `bson:"_id"`
	UserID          int64                `bson:"user_id"`
	Items           []orderItemDoc       `bson:"items"`
	ShippingAddress addressDoc           `bson:"shipping_address"`
	PaymentMethod   string               `bson:"payment_method"`
	PaymentResult   paymentResultDoc     `bson:"payment_result"`
	ItemsPrice      primitive.Decimal128 `bson:"items_price"`
	TaxPrice        primitive.Decimal128 `bson:"tax_price"`
	ShippingPrice   primitive.Decimal128 `bson:"shipping_price"`
	TotalPrice      primitive.Decimal128 `bson:"total_price"`
	TotalQuantity   int                  `bson:"total_quantity"`
	IsPaid          bool                 `bson:"is_paid"`
	PaidAt          *time.Time           `bson:"paid_at"`
	IsDelivered     bool                 `bson:"is_delivered"`
	DeliveredAt     *time.Time           `bson:"delivered_at"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

type userDoc struct {
	ID           int64     `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Role         string    `bson:"role"`
	Status       string    `bson:"status"`
	TokenVersion uint64    `bson:"token_version"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type purchaseDoc struct {
	ID          int64                `bson:"_id"`
	UserID      int64                `bson:"user_id"`
	OrderID     int64                `bson:"order_id"`
	Products    string               `bson:"products"`
	TotalAmount primitive.Decimal128 `bson:"total_amount"`
	CreatedAt   time.Time            `bson:"created_at"`
}

func toDecimal128(m models.Money) primitive.Decimal128 {
	d, err := primitive.ParseDecimal128(m.String())
	if err != nil {
		// Money.String 总是合法的定点小数
		return primitive.NewDecimal128(0, 0)
	}
	return d
}

func fromDecimal128(d primitive.Decimal128) models.Money {
	m, err := models.ParseMoney(d.String())
	if err != nil {
		return models.Money{}
	}
	return m
}

func newProductDoc(p *models.Product) productDoc {
	return productDoc{
		ID:          int64(p.ID),
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Description: p.Description,
		Image:       p.Image,
		Price:       toDecimal128(p.Price),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productDoc) model() models.Product {
	return models.Product{
		ID:          uint(d.ID),
		Name:        d.Name,
		Category:    d.Category,
		Brand:       d.Brand,
		Description: d.Description,
		Image:       d.Image,
		Price:       fromDecimal128(d.Price),
		Stock:       d.Stock,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newCartDoc(c *models.Cart) cartDoc {
	doc := cartDoc{
		ID:        int64(c.ID),
		UserID:    int64(c.UserID),
		Items:     make([]cartItemDoc, 0, len(c.Items)),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, item := range c.Items {
		doc.Items = append(doc.Items, cartItemDoc{
			ID:        int64(item.ID),
			ProductID: int64(item.ProductID),
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return doc
}

func (d cartDoc) model() models.Cart {
	cart := models.Cart{
		ID:        uint(d.ID),
		UserID:    uint(d.UserID),
		Items:     make([]models.CartItem, 0, len(d.Items)),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, item := range d.Items {
		cart.Items = append(cart.Items, models.CartItem{
			ID:        uint(item.ID),
			CartID:    uint(d.ID),
			ProductID: uint(item.ProductID),
			Quantity:  item.Quantity,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return cart
}

func newOrderDoc(o *models.Order) orderDoc {
	doc := orderDoc{
		ID:     int64(o.ID),
		UserID: int64(o.UserID),
		Items:  make([]orderItemDoc, 0, len(o.Items)),
		ShippingAddress: addressDoc{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
		},
		PaymentMethod: o.PaymentMethod,
		PaymentResult: paymentResultDoc(o.PaymentResult),
		ItemsPrice:    toDecimal128(o.ItemsPrice),
		TaxPrice:      toDecimal128(o.TaxPrice),
		ShippingPrice: toDecimal128(o.ShippingPrice),
		TotalPrice:    toDecimal128(o.TotalPrice),
		TotalQuantity: o.TotalQuantity,
		IsPaid:        o.IsPaid,
		PaidAt:        o.PaidAt,
		IsDelivered:   o.IsDelivered,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, item := range o.Items {
		doc.Items = append(doc.Items, orderItemDoc{
			ID:        int64(item.ID),
			ProductID: int64(item.ProductID),
			Name:      item.Name,
			Price:     toDecimal128(item.Price),
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	return doc
}

func (d orderDoc) model() models.Order {
	order := models.Order{
		ID:     uint(d.ID),
		UserID: uint(d.UserID),
		Items:  make([]models.OrderItem, 0, len(d.Items)),
		ShippingAddress: models.ShippingAddress{
			Street:  d.ShippingAddress.Street,
			City:    d.ShippingAddress.City,
			State:   d.ShippingAddress.State,
			ZipCode: d.ShippingAddress.ZipCode,
			Country: d.ShippingAddress.Country,
		},
		PaymentMethod: d.PaymentMethod,
		PaymentResult: models.PaymentResult(d.PaymentResult),
		ItemsPrice:    fromDecimal128(d.ItemsPrice),
		TaxPrice:      fromDecimal128(d.TaxPrice),
		ShippingPrice: fromDecimal128(d.ShippingPrice),
		TotalPrice:    fromDecimal128(d.TotalPrice),
		TotalQuantity: d.TotalQuantity,
		IsPaid:        d.IsPaid,
		PaidAt:        d.PaidAt,
		IsDelivered:   d.IsDelivered,
		DeliveredAt:   d.DeliveredAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	for _, item := range d.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uint(item.ID),
			OrderID:   uint(d.ID),
			ProductID: uint(item.ProductID),
			Name:      item.Name,
			Price:     fromDecimal128(item.Price),
			Quantity:  item.Quantity,
			Image:     item.Image,
			CreatedAt: d.CreatedAt,
		})
	}
	return order
}

func newUserDoc(u *models.User) userDoc {
	return userDoc{
		ID:           int64(u.ID),
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Status:       u.Status,
		TokenVersion: u.TokenVersion,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDoc) model() models.User {
	return models.User{
		ID:           uint(d.ID),
		Name:         d.Name,
		Email:        d.Email,
		Role:         d.Role,
		Status:       d.Status,
		TokenVersion: d.TokenVersion,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (d purchaseDoc) model() models.PurchaseRecord {
	return models.PurchaseRecord{
		ID:          uint(d.ID),
		UserID:      uint(d.UserID),
		OrderID:     uint(d.OrderID),
		Products:    d.Products,
		TotalAmount: fromDecimal128(d.TotalAmount),
		CreatedAt:   d.CreatedAt,
	}
}
