package authService

import (
	"context"

	"goblog/internal/api/auth"
	authRepository "goblog/internal/api/auth/repository"
	"goblog/pkg/bcrypt"
	"goblog/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (auth.UserResponse, error)
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:         log,
		authRepo:    authRepo,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
