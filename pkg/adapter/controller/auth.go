package controller

import (
	"context"

	"portfolio-go-backend/pkg/entity/model"
	usecase "portfolio-go-backend/pkg/usecase/usecase/auth"
)

type Auth interface {
	Login(ctx context.Context, input model.LoginInput) (*model.AuthPayload, error)
	RefreshToken(ctx context.Context) (*model.RefreshTokenPayload, error)
}

type authController struct {
	authUseCase usecase.Auth
}

// Create new auth controller

func NewAuthController(au usecase.Auth) Auth {
	return &authController{authUseCase: au}
}

func (ac *authController) Login(
	ctx context.Context,
	input model.LoginInput,
) (*model.AuthPayload, error) {
	return ac.authUseCase.Login(ctx, input)
}

func (ac *authController) RefreshToken(ctx context.Context) (*model.RefreshTokenPayload, error) {
	return ac.authUseCase.RefreshToken(ctx)
}
