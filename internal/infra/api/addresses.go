package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"app/internal/domain/model"
)

type AddressClient struct {
	c *Client
}

func NewAddressClient(c *Client) *AddressClient {
	return &AddressClient{c: c}
}

func (a *AddressClient) ListByEntity(ctx context.Context, entityID string, entityType model.EntityType) ([]model.Address, error) {
	q := url.Values{}
	q.Set("entityId", entityID)
	q.Set("entityType", string(entityType))

	var list []model.Address
	err := a.c.doJSON(ctx, http.MethodGet, "/addresses?"+q.Encode(), nil, &list)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.Address{}
	}
	return list, nil
}

func (a *AddressClient) Create(ctx context.Context, address model.Address) (model.Address, error) {
	var created model.Address
	err := a.c.doJSON(ctx, http.MethodPost, "/addresses", address, &created)
	if err != nil {
		return model.Address{}, err
	}
	return created, nil
}

func (a *AddressClient) Update(ctx context.Context, addressID string, address model.Address) (model.Address, error) {
	var updated model.Address
	err := a.c.doJSON(ctx, http.MethodPut, "/addresses/"+url.PathEscape(addressID), address, &updated)
	if err != nil {
		return model.Address{}, err
	}
	return updated, nil
}

func (a *AddressClient) Delete(ctx context.Context, addressID string) error {
	return a.c.doJSON(ctx, http.MethodDelete, "/addresses/"+url.PathEscape(addressID), nil, nil)
}

type setPrincipalRequest struct {
	EntityID   string           `json:"entityId"`
	EntityType model.EntityType `json:"entityType"`
}

// デフォルト住所の切り替え。他の住所のprincipalはリモート側が落とす。
func (a *AddressClient) SetPrincipal(ctx context.Context, addressID string, entityID string, entityType model.EntityType) error {
	path := fmt.Sprintf("/addresses/%s/primary", url.PathEscape(addressID))
	return a.c.doJSON(ctx, http.MethodPut, path, setPrincipalRequest{EntityID: entityID, EntityType: entityType}, nil)
}
