package services

import (
	"context"
	"fmt"

	"recordstore-api/internal/models"
	"recordstore-api/internal/repository"
	"recordstore-api/internal/utils"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	utils.LogSuccess("UserService", "User service initialized")
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) []models.User {
	users := s.userRepo.List(ctx)
	utils.LogInfo("UserService", fmt.Sprintf("Listing users: %d", len(users)))
	return users
}

func (s *UserService) GetUser(ctx context.Context, id int) (models.User, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		utils.LogWarning("UserService", fmt.Sprintf("User %d not found", id))
		return user, err
	}
	utils.LogSuccess("UserService", fmt.Sprintf("User %d found", id))
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	utils.LogInfo("UserService", fmt.Sprintf("Creating user %d (%s)", user.ID, user.Name))

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		utils.LogWarning("UserService", fmt.Sprintf("User %d not created: %v", user.ID, err))
		return created, err
	}

	utils.LogSuccess("UserService", fmt.Sprintf("User %d created", created.ID))
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, user models.User) (models.User, error) {
	utils.LogInfo("UserService", fmt.Sprintf("Updating user %d", id))

	updated, err := s.userRepo.Update(ctx, id, user)
	if err != nil {
		utils.LogWarning("UserService", fmt.Sprintf("User %d not updated: %v", id, err))
		return updated, err
	}

	utils.LogSuccess("UserService", fmt.Sprintf("User %d updated", id))
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) (models.User, error) {
	utils.LogInfo("UserService", fmt.Sprintf("Deleting user %d", id))

	removed, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		utils.LogWarning("UserService", fmt.Sprintf("User %d not deleted: %v", id, err))
		return removed, err
	}

	utils.LogSuccess("UserService", fmt.Sprintf("User %d deleted", id))
	return removed, nil
}

func (s *UserService) Count(ctx context.Context) int {
	return s.userRepo.Count(ctx)
}
