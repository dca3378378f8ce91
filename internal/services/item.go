package services

import (
	"context"
	"fmt"

	"recordstore-api/internal/models"
	"recordstore-api/internal/repository"
	"recordstore-api/internal/utils"
)

type ItemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	utils.LogSuccess("ItemService", "Item service initialized")
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) ListItems(ctx context.Context) []models.Item {
	items := s.itemRepo.List(ctx)
	utils.LogInfo("ItemService", fmt.Sprintf("Listing items: %d", len(items)))
	return items
}

func (s *ItemService) GetItem(ctx context.Context, id int) (models.Item, error) {
	item, err := s.itemRepo.Get(ctx, id)
	if err != nil {
		utils.LogWarning("ItemService", fmt.Sprintf("Item %d not found", id))
		return item, err
	}
	utils.LogSuccess("ItemService", fmt.Sprintf("Item %d found", id))
	return item, nil
}

func (s *ItemService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	utils.LogInfo("ItemService", fmt.Sprintf("Creating item %d (%s)", item.ID, item.Name))

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		utils.LogWarning("ItemService", fmt.Sprintf("Item %d not created: %v", item.ID, err))
		return created, err
	}

	utils.LogSuccess("ItemService", fmt.Sprintf("Item %d created", created.ID))
	return created, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id int, item models.Item) (models.Item, error) {
	utils.LogInfo("ItemService", fmt.Sprintf("Updating item %d", id))

	updated, err := s.itemRepo.Update(ctx, id, item)
	if err != nil {
		utils.LogWarning("ItemService", fmt.Sprintf("Item %d not updated: %v", id, err))
		return updated, err
	}

	utils.LogSuccess("ItemService", fmt.Sprintf("Item %d updated", id))
	return updated, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) (models.Item, error) {
	utils.LogInfo("ItemService", fmt.Sprintf("Deleting item %d", id))

	removed, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		utils.LogWarning("ItemService", fmt.Sprintf("Item %d not deleted: %v", id, err))
		return removed, err
	}

	utils.LogSuccess("ItemService", fmt.Sprintf("Item %d deleted", id))
	return removed, nil
}

func (s *ItemService) Count(ctx context.Context) int {
	return s.itemRepo.Count(ctx)
}
