package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-clinic-management/internal/converter"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("unknown role")
)

// Credential is a fixed login. There is no user table; the demo accounts
// below are the only identities.
type Credential struct {
	Account      entity.Account
	PasswordHash []byte
}

// NewDemoCredentials returns the admin, doctor and patient demo accounts, all
// sharing password.
func NewDemoCredentials(password string, cost int) ([]Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	accounts := []entity.Account{
		{ID: 1, Name: "Demo Patient", Username: "patient@example.com", Role: entity.RolePatient},
		{ID: 2, Name: "Demo Doctor", Username: "doctor@example.com", Role: entity.RoleDoctor},
		{ID: 3, Name: "Demo Admin", Username: "admin@example.com", Role: entity.RoleAdmin},
	}

	credentials := make([]Credential, len(accounts))
	for i, account := range accounts {
		credentials[i] = Credential{Account: account, PasswordHash: hash}
	}
	return credentials, nil
}

type AuthUsecase interface {
	Login(ctx context.Context, role string, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accountID uint, tokenID string) error
}

type authUsecase struct {
	log         *logrus.Logger
	credentials map[string]Credential
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	log *logrus.Logger,
	credentials []Credential,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	byUsername := make(map[string]Credential, len(credentials))
	for _, c := range credentials {
		byUsername[strings.ToLower(c.Account.Username)] = c
	}

	return &authUsecase{
		log:         log,
		credentials: byUsername,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// AccessTokenKey is the redis key marking a token as live.
func AccessTokenKey(accountID uint, tokenID string) string {
	return fmt.Sprintf("access_token:%d:%s", accountID, tokenID)
}

// Login checks the username and password against the demo accounts and the
// role in the path against the account's role.
func (u *authUsecase) Login(ctx context.Context, role string, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	wanted, ok := entity.ParseRole(role)
	if !ok {
		return nil, ErrInvalidRole
	}

	credential, ok := u.credentials[strings.ToLower(req.Username)]
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	account := credential.Account
	if account.Role != wanted {
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(account.ID, account.Username, string(account.Role))
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, AccessTokenKey(account.ID, tokenID), "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"account_id": account.ID, "role": account.Role}).Info("Login successful")

	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:        converter.AccountToResponse(&account),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accountID uint, tokenID string) error {
	if err := u.redisClient.Del(ctx, AccessTokenKey(accountID, tokenID)).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}
	return nil
}
