package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

type AdminService struct {
	repo *AdminRepository
}

func NewAdminService(repo *AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) RegisterAdmin(ctx context.Context, req RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return errors.New("name and email are required")
	}
	if len(req.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("email already registered")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	admin := &Admin{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Role:         "admin",
	}
	return s.repo.CreateAdmin(ctx, admin)
}

func (s *AdminService) AuthenticateAdmin(ctx context.Context, cred Credential) (string, error) {
	admin, err := s.repo.FindByEmail(ctx, strings.ToLower(cred.Email))
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", errors.New("invalid email or password")
	}
	if !CheckPasswordHash(cred.Password, admin.PasswordHash) {
		return "", errors.New("invalid email or password")
	}

	return GenerateJWT(admin.Name, admin.Email, admin.Role, 24*time.Hour)
}
