package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AddressUsecase は住所の一覧・選択・編集。
// 実体はリモートAPIが持ち、ここは選択ルールと入力チェックだけ。
type AddressUsecase struct {
	api repo.AddressAPI
}

func NewAddressUsecase(api repo.AddressAPI) *AddressUsecase {
	return &AddressUsecase{api: api}
}

func (u *AddressUsecase) List(ctx context.Context, userID string) ([]model.Address, error) {
	if userID == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	list, err := u.api.ListByEntity(ctx, userID, model.EntityTypeUser)
	if err != nil {
		return nil, mapAPIError(err)
	}
	return list, nil
}

// デフォルト配送先の選択ルール：
// principalが立っている最初の住所、無ければ先頭。空なら選べない。
// principalが複数立っていても最初の1件に倒す。
func PickDefault(addresses []model.Address) (model.Address, bool) {
	if len(addresses) == 0 {
		return model.Address{}, false
	}

	for _, a := range addresses {
		if a.Principal {
			return a, true
		}
	}
	return addresses[0], true
}

// チェックアウト画面を開いたときの初期選択
func (u *AddressUsecase) Default(ctx context.Context, userID string) (model.Address, error) {
	list, err := u.List(ctx, userID)
	if err != nil {
		return model.Address{}, err
	}

	a, ok := PickDefault(list)
	if !ok {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "no address")
	}
	return a, nil
}

type AddressCreateRequest struct {
	Rua         string  `json:"rua"`
	Numero      string  `json:"numero"`
	Complemento *string `json:"complemento,omitempty"`
	Bairro      string  `json:"bairro"`
	Cidade      string  `json:"cidade"`
	Estado      string  `json:"estado"`
	CEP         string  `json:"cep"`
	Principal   bool    `json:"principal"`
	Apelido     *string `json:"apelido,omitempty"`
}

func (u *AddressUsecase) Create(ctx context.Context, userID string, req AddressCreateRequest) (model.Address, error) {
	if userID == "" {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//入力チェック
	if req.Rua == "" || req.Numero == "" || req.Bairro == "" || req.Cidade == "" || req.Estado == "" || req.CEP == "" {
		return model.Address{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}

	created, err := u.api.Create(ctx, model.Address{
		EntityID:    userID,
		EntityType:  model.EntityTypeUser,
		Rua:         req.Rua,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		CEP:         req.CEP,
		Principal:   req.Principal,
		Apelido:     req.Apelido,
	})
	if err != nil {
		return model.Address{}, mapAPIError(err)
	}

	//principal付きで作ったら他の住所のフラグを落としてもらう
	if created.Principal {
		_ = u.api.SetPrincipal(ctx, created.ID, userID, model.EntityTypeUser)
	}

	return created, nil
}

func (u *AddressUsecase) Update(ctx context.Context, userID string, addressID string, req AddressCreateRequest) (model.Address, error) {
	if userID == "" {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if addressID == "" {
		return model.Address{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	//所有チェック（本人の住所だけ）
	if err := u.ensureOwned(ctx, userID, addressID); err != nil {
		return model.Address{}, err
	}

	updated, err := u.api.Update(ctx, addressID, model.Address{
		EntityID:    userID,
		EntityType:  model.EntityTypeUser,
		Rua:         req.Rua,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		CEP:         req.CEP,
		Apelido:     req.Apelido,
	})
	if err != nil {
		return model.Address{}, mapAPIError(err)
	}
	return updated, nil
}

func (u *AddressUsecase) Delete(ctx context.Context, userID string, addressID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if addressID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.ensureOwned(ctx, userID, addressID); err != nil {
		return err
	}

	if err := u.api.Delete(ctx, addressID); err != nil {
		return mapAPIError(err)
	}
	return nil
}

// デフォルト住所の切り替え。
// principalは同一entity内で1つ：リモート側が兄弟のフラグを同時に落とす。
func (u *AddressUsecase) SetPrincipal(ctx context.Context, userID string, addressID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if addressID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.ensureOwned(ctx, userID, addressID); err != nil {
		return err
	}

	if err := u.api.SetPrincipal(ctx, addressID, userID, model.EntityTypeUser); err != nil {
		return mapAPIError(err)
	}
	return nil
}

// 指定の住所がこのユーザーのものか
func (u *AddressUsecase) ensureOwned(ctx context.Context, userID string, addressID string) error {
	list, err := u.api.ListByEntity(ctx, userID, model.EntityTypeUser)
	if err != nil {
		return mapAPIError(err)
	}

	for _, a := range list {
		if a.ID == addressID {
			return nil
		}
	}
	return NewHTTPError(http.StatusNotFound, "not found")
}
