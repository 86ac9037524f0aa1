package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/ticket-order-service/internal/config"
	"github.com/SergeyBogomolovv/ticket-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Деньги в заказах хранятся и отдаются с точностью до копеек.
const priceScale = 2

// Client читает события и вариации из сервиса каталога. Без кэша и повторов:
// данные для заказа всегда берутся свежие.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.Catalog) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type eventDTO struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	IsoDate   string           `json:"isoDate"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Location  string           `json:"location"`
	ImageURL  string           `json:"imageUrl"`
	Price     *decimal.Decimal `json:"price"`
}

type variationDTO struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	ProductName string           `json:"productName"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

func (c *Client) GetEvent(ctx context.Context, id int64) (entities.EventSnapshot, error) {
	var dto eventDTO
	if err := c.get(ctx, "/api/events/"+strconv.FormatInt(id, 10), entities.ErrEventNotFound, &dto); err != nil {
		return entities.EventSnapshot{}, err
	}

	event := entities.EventSnapshot{
		ID:        dto.ID,
		Name:      dto.Name,
		Date:      dto.IsoDate,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Location:  dto.Location,
		ImageURL:  dto.ImageURL,
	}
	if dto.Price != nil {
		event.Price = *dto.Price
	}
	return event, nil
}

func (c *Client) GetVariation(ctx context.Context, id int64) (entities.VariationSnapshot, error) {
	var dto variationDTO
	if err := c.get(ctx, "/api/products/variations/"+strconv.FormatInt(id, 10), entities.ErrVariationNotFound, &dto); err != nil {
		return entities.VariationSnapshot{}, err
	}

	// Без цены вариацию нельзя положить в заказ.
	if dto.Price == nil {
		return entities.VariationSnapshot{}, fmt.Errorf("%w: variation %d has no price", entities.ErrDependencyUnavailable, id)
	}
	if dto.Price.IsNegative() || !dto.Price.Equal(dto.Price.Round(priceScale)) {
		return entities.VariationSnapshot{}, fmt.Errorf("%w: variation %d has invalid price %s",
			entities.ErrDependencyUnavailable, id, dto.Price.String())
	}

	v := entities.VariationSnapshot{
		ID:          dto.ID,
		Name:        dto.Name,
		ProductName: dto.ProductName,
		Price:       *dto.Price,
	}
	if dto.Stock != nil {
		v.Stock = *dto.Stock
	}
	return v, nil
}

func (c *Client) get(ctx context.Context, path string, notFound error, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(entities.ErrDependencyUnavailable, fmt.Errorf("failed to call catalog: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return notFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: catalog responded %d on %s", entities.ErrDependencyUnavailable, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.Join(entities.ErrDependencyUnavailable, fmt.Errorf("failed to decode catalog response: %w", err))
	}
	return nil
}
