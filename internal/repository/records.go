package repository

import "recordstore-api/internal/models"

type ItemRepository = Store[models.Item]

type UserRepository = Store[models.User]

// NewItemRepository returns the list-backed store used for items.
func NewItemRepository() ItemRepository {
	return NewListStore[models.Item]("items")
}

// NewUserRepository returns the map-backed store used for users.
func NewUserRepository() UserRepository {
	return NewMapStore[models.User]("users")
}

var (
	_ Store[models.Item] = (*ListStore[models.Item])(nil)
	_ Store[models.User] = (*MapStore[models.User])(nil)
)
