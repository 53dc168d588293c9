package models

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type User struct {
	ID               uint    `gorm:"primaryKey"`
	FirstName        string  `gorm:"type:text;not null"`
	LastName         string  `gorm:"type:text;not null"`
	Email            string  `gorm:"not null"` // уникальность обеспечим функциональным индексом lower(email)
	Password         string  `gorm:"not null"` // bcrypt hash
	IsAdmin          bool    `gorm:"not null;default:false"`
	IsActivated      bool    `gorm:"not null;default:false;index"`
	ConfirmationCode *string `gorm:"type:text"`
	ResetCode        *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (User) TableName() string { return "users" }

type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	Brand       string `gorm:"type:text"`
	Category    string `gorm:"type:text"`
	Images      string `gorm:"type:text"`
	PriceCents  int64  `gorm:"not null;default:0"`
	Quantity    int64  `gorm:"not null;default:0"` // доступный остаток, CHECK >= 0 в миграции

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Product) TableName() string { return "products" }

type Order struct {
	ID     uint        `gorm:"primaryKey"`
	UserID uint        `gorm:"not null;index"`
	Status OrderStatus `gorm:"type:text;not null;default:'Pending';index"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	User  User        `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // каскад на позиции
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uint  `gorm:"primaryKey"`
	OrderID   uint  `gorm:"not null;index"`
	ProductID uint  `gorm:"not null;index"`
	Quantity  int64 `gorm:"not null;default:1"` // CHECK > 0 в миграции

	CreatedAt time.Time `gorm:"not null;default:now()"`

	Product Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string { return "order_items" }

// Корзина создаётся при активации аккаунта, одна на пользователя.
type Cart struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Cart) TableName() string { return "carts" }
