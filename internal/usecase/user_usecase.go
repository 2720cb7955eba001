package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ログイン中ユーザーのプロフィール参照
type UserUsecase struct {
	users repo.UserAPI
}

func NewUserUsecase(users repo.UserAPI) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) Me(ctx context.Context, userID string) (model.User, error) {
	if userID == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return model.User{}, mapAPIError(err)
	}
	return user, nil
}

type UpdateMeRequest struct {
	Nome     *string `json:"nome,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
}

// プロフィール更新。変わったフィールドだけリモートへ送る。
// セッションの表示名は次回ログインまで古いままでよい。
func (u *UserUsecase) UpdateMe(ctx context.Context, userID string, req UpdateMeRequest) (model.User, error) {
	if userID == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if req.Nome == nil && req.Telefone == nil {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	if req.Nome != nil && *req.Nome == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}

	user, err := u.users.Update(ctx, userID, repo.UserUpdateInput{
		Nome:     req.Nome,
		Telefone: req.Telefone,
	})
	if err != nil {
		return model.User{}, mapAPIError(err)
	}
	return user, nil
}
