package api

import (
	"context"
	"net/http"
	"net/url"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// リモート認証で資格情報を確認する。
// リモートのトークンは使わない（セッショントークンはBFFが発行する）。
func (a *AuthClient) Login(ctx context.Context, email string, senha string) (model.User, error) {
	var resp loginResponse
	err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Senha: senha}, &resp)
	if err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}

// 新規登録。ログイン同様、リモートのトークンは使わない。
func (a *AuthClient) Register(ctx context.Context, in repo.RegisterInput) (model.User, error) {
	var resp loginResponse
	err := a.c.doJSON(ctx, http.MethodPost, "/auth/register", in, &resp)
	if err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}

type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

func (u *UserClient) FindByID(ctx context.Context, userID string) (model.User, error) {
	var out model.User
	err := u.c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &out)
	if err != nil {
		return model.User{}, err
	}
	return out, nil
}

// プロフィールの部分更新（nilのフィールドは送らない）
func (u *UserClient) Update(ctx context.Context, userID string, in repo.UserUpdateInput) (model.User, error) {
	var out model.User
	err := u.c.doJSON(ctx, http.MethodPut, "/users/"+url.PathEscape(userID), in, &out)
	if err != nil {
		return model.User{}, err
	}
	return out, nil
}
