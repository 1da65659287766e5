package service

import (
	"errors"

	"go.uber.org/zap"

	"bookshop-app/internal/apperr"
	"bookshop-app/internal/models"
	"bookshop-app/internal/storage"
	"bookshop-app/internal/utils"
)

type AuthService struct {
	store  storage.Store
	tokens *utils.TokenManager
	logger *zap.Logger
}

func NewAuthService(store storage.Store, tokens *utils.TokenManager, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: store, tokens: tokens, logger: logger}
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *AuthService) Signup(name, email, password string) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("name, email and password are required")
	}
	if _, err := s.store.Users().FindByNameOrEmail(name, email); err == nil {
		return nil, apperr.Validation("user with this name or email already exists")
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error("failed to check existing user", zap.Error(err))
		return nil, apperr.Storage(err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.store.Users().Create(user); err != nil {
		s.logger.Error("failed to create user", zap.String("name", name), zap.Error(err))
		return nil, apperr.Storage(err)
	}

	token, err := s.tokens.Generate(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	s.logger.Info("user signed up", zap.Uint("user_id", user.ID), zap.String("name", user.Name))
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(name, password string) (*AuthResult, error) {
	if name == "" || password == "" {
		return nil, apperr.Validation("name and password are required")
	}
	user, err := s.store.Users().FindByName(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		s.logger.Error("failed to look up user", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	s.logger.Info("user logged in", zap.Uint("user_id", user.ID), zap.String("name", user.Name))
	return &AuthResult{Token: token, User: user}, nil
}
