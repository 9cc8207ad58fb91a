package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-user-api/logger"
	"go-user-api/model"
	"go-user-api/repository"
)

// ErrEmptyUpdate means an update request carried no fields to change.
var ErrEmptyUpdate = errors.New("no valid fields provided for update")

const (
	allUsersCacheKey = "users:all"
	userCacheTTL     = 10 * time.Minute
)

// passwordHasher is the slice of AuthService the user service needs for
// create and update operations.
type passwordHasher interface {
	HashPassword(password string) (string, error)
}

// UserService handles user CRUD business logic. Reads go through a
// cache-aside strategy; every write invalidates the affected cache entries.
type UserService struct {
	userRepo repository.IUserRepository
	hasher   passwordHasher
	cache    ICacheClient
}

func NewUserService(userRepo repository.IUserRepository, hasher passwordHasher, cache ICacheClient) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		cache:    cache,
	}
}

func userCacheKey(id int) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser hashes the plaintext password and stores the new user. The
// plaintext is discarded; only the hash is ever persisted.
func (s *UserService) CreateUser(req model.CreateUserRequest) (*model.User, error) {
	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	s.cache.Del(context.Background(), allUsersCacheKey)

	logger.Log.WithField("user_id", user.ID).Info("User created")
	return user, nil
}

func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	return s.userRepo.GetUserByEmail(email)
}

// GetUserByID fetches a user, serving from cache when possible.
func (s *UserService) GetUserByID(id int) (*model.User, error) {
	ctx := context.Background()
	cacheKey := userCacheKey(id)

	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		user := &model.User{}
		if err := json.Unmarshal([]byte(cached), user); err == nil {
			return user, nil
		}
	}

	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(user); err == nil {
		s.cache.Set(ctx, cacheKey, data, userCacheTTL)
	}
	return user, nil
}

// GetAllUsers lists all users, utilizing a cache-aside strategy.
func (s *UserService) GetAllUsers() ([]*model.User, error) {
	ctx := context.Background()

	cached, err := s.cache.Get(ctx, allUsersCacheKey).Result()
	if err == nil {
		var users []*model.User
		if err := json.Unmarshal([]byte(cached), &users); err == nil {
			return users, nil
		}
	}

	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(users); err == nil {
		s.cache.Set(ctx, allUsersCacheKey, data, userCacheTTL)
	}
	return users, nil
}

// UpdateUser applies a partial update. A request with no fields set returns
// ErrEmptyUpdate. A new password is hashed before it reaches the store.
func (s *UserService) UpdateUser(id int, req model.UpdateUserRequest) (*model.User, error) {
	patch := model.UserPatch{}
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Email != "" {
		patch.Email = &req.Email
	}
	if req.Password != "" {
		hash, err := s.hasher.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	if patch.Empty() {
		return nil, ErrEmptyUpdate
	}

	user, err := s.userRepo.UpdateUser(id, patch)
	if err != nil {
		return nil, err
	}

	s.cache.Del(context.Background(), userCacheKey(id), allUsersCacheKey)

	logger.Log.WithField("user_id", id).Info("User updated")
	return user, nil
}

// DeleteUser removes a user permanently. There is no soft delete.
func (s *UserService) DeleteUser(id int) error {
	if err := s.userRepo.DeleteUser(id); err != nil {
		return err
	}

	s.cache.Del(context.Background(), userCacheKey(id), allUsersCacheKey)

	logger.Log.WithField("user_id", id).Info("User deleted")
	return nil
}
