package repository

import "gorm.io/gorm"

type Repository struct {
	DB         *gorm.DB
	Users      UserRepo
	Products   ProductRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
	Carts      CartRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Users:      NewUserRepo(db),
		Products:   NewProductRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
		Carts:      NewCartRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }
