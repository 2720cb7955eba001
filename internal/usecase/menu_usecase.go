package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// MenuUsecase は店側ダッシュボードのメニュー管理。
// 変更できるのは自分の店のメニューだけ。
type MenuUsecase struct {
	catalog repo.CatalogAPI
}

func NewMenuUsecase(catalog repo.CatalogAPI) *MenuUsecase {
	return &MenuUsecase{catalog: catalog}
}

type MenuItemRequest struct {
	RestauranteID string          `json:"restauranteId"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Preco         decimal.Decimal `json:"preco"`
	ImagemURL     string          `json:"imagemUrl"`
	Disponivel    bool            `json:"disponivel"`
}

func (u *MenuUsecase) Create(ctx context.Context, userID string, req MenuItemRequest) (model.MenuItem, error) {
	if userID == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//入力チェック
	if req.RestauranteID == "" || req.Nome == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}
	if req.Preco.IsNegative() {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid preco")
	}

	if err := u.ensureOwner(ctx, userID, req.RestauranteID); err != nil {
		return model.MenuItem{}, err
	}

	created, err := u.catalog.CreateMenuItem(ctx, repo.MenuItemInput{
		RestauranteID: req.RestauranteID,
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Preco:         req.Preco,
		ImagemURL:     req.ImagemURL,
		Disponivel:    req.Disponivel,
	})
	if err != nil {
		return model.MenuItem{}, mapAPIError(err)
	}
	return created, nil
}

func (u *MenuUsecase) Update(ctx context.Context, userID string, itemID string, req MenuItemRequest) (model.MenuItem, error) {
	if userID == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if req.Preco.IsNegative() {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid preco")
	}

	item, err := u.ownedItem(ctx, userID, itemID)
	if err != nil {
		return model.MenuItem{}, err
	}

	updated, err := u.catalog.UpdateMenuItem(ctx, itemID, repo.MenuItemInput{
		RestauranteID: item.RestauranteID,
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Preco:         req.Preco,
		ImagemURL:     req.ImagemURL,
		Disponivel:    req.Disponivel,
	})
	if err != nil {
		return model.MenuItem{}, mapAPIError(err)
	}
	return updated, nil
}

// 品切れトグル
func (u *MenuUsecase) SetAvailability(ctx context.Context, userID string, itemID string, disponivel bool) (model.MenuItem, error) {
	if userID == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.ownedItem(ctx, userID, itemID); err != nil {
		return model.MenuItem{}, err
	}

	updated, err := u.catalog.SetMenuItemAvailability(ctx, itemID, disponivel)
	if err != nil {
		return model.MenuItem{}, mapAPIError(err)
	}
	return updated, nil
}

func (u *MenuUsecase) Delete(ctx context.Context, userID string, itemID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := u.catalog.DeleteMenuItem(ctx, itemID); err != nil {
		return mapAPIError(err)
	}
	return nil
}

// メニューを引いて、その店のオーナーか確認する
func (u *MenuUsecase) ownedItem(ctx context.Context, userID string, itemID string) (model.MenuItem, error) {
	item, err := u.catalog.FindMenuItem(ctx, itemID)
	if err != nil {
		return model.MenuItem{}, mapAPIError(err)
	}

	if err := u.ensureOwner(ctx, userID, item.RestauranteID); err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (u *MenuUsecase) ensureOwner(ctx context.Context, userID string, restaurantID string) error {
	r, err := u.catalog.FindRestaurant(ctx, restaurantID)
	if err != nil {
		return mapAPIError(err)
	}
	if r.UserID != userID {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}
