package usecase

import (
	"context"
	"errors"

	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
	"portfolio-go-backend/pkg/util/auth"
)

type authUseCase struct {
	authRepository repository.Auth
}

type Auth interface {
	Login(ctx context.Context, input model.LoginInput) (*model.AuthPayload, error)
	RefreshToken(ctx context.Context) (*model.RefreshTokenPayload, error)
}

// This function creates new auth use case
func NewAuthUseCase(r repository.Auth) Auth {
	return &authUseCase{authRepository: r}
}

func (uc *authUseCase) Login(
	ctx context.Context,
	input model.LoginInput,
) (*model.AuthPayload, error) {
	if err := ValidateLoginInput(input); err != nil {
		return nil, err
	}
	user, err := uc.authRepository.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.New("Invalid Credentials")
	}
	if err := auth.VerifyPassword(input.Password, user.Password); err != nil {
		return nil, errors.New("Invalid Credentials")
	}
	accessToken, err := auth.GenerateAccessToken(string(user.ID))
	if err != nil {
		return nil, err
	}

	refreshToken, err := auth.GenerateRefreshToken(string(user.ID))
	if err != nil {
		return nil, err
	}
	return &model.AuthPayload{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (uc *authUseCase) RefreshToken(ctx context.Context) (*model.RefreshTokenPayload, error) {
	refreshToken, err := auth.GetRefreshTokenFromContext(ctx)
	if err != nil {
		return nil, err
	}
	accessToken, newRefreshToken, err := auth.RefreshTokens(refreshToken)
	if err != nil {
		return nil, err
	}

	return &model.RefreshTokenPayload{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
