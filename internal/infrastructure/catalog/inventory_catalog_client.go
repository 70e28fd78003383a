package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"
)

var ErrMissingInventoryServiceURL = errors.New("missing INVENTORY_SERVICE_URL")

// InventoryCatalogClient is the read-only client for the inventory service's
// catalog API. It only ever looks prices up; stock mutation stays with the
// inventory service.
//
// Mock mode (INVENTORY_CATALOG_MOCK=1) serves deterministic items without a
// network hop, for local development against an empty environment.

type InventoryCatalogClient struct {
	httpClient *http.Client
	baseURL    string
	mockMode   bool
}

var _ interfaces.IInventoryCatalog = (*InventoryCatalogClient)(nil)

func NewInventoryCatalogClient(baseURL string) (*InventoryCatalogClient, error) {
	if isCatalogMockEnabled() {
		log.Printf("[catalog][client] mock mode enabled")
		return &InventoryCatalogClient{mockMode: true}, nil
	}

	if strings.TrimSpace(baseURL) == "" {
		log.Printf("[catalog][client] missing INVENTORY_SERVICE_URL")
		return nil, ErrMissingInventoryServiceURL
	}

	return &InventoryCatalogClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}, nil
}

// catalogItemPayload is the inventory service's wire shape; unit_cost arrives
// as a rupee float and is converted to paise exactly once, here.
type catalogItemPayload struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	UnitCost     float64 `json:"unit_cost"`
	AvailableQty int     `json:"available_qty"`
}

func (c *InventoryCatalogClient) LookupItem(ctx context.Context, sku string) (entities.CatalogItem, error) {
	if c.mockMode {
		log.Printf("[catalog][client] mock lookup sku=%s", sku)
		return entities.CatalogItem{
			SKU:          sku,
			Name:         "Mock Part " + sku,
			UnitCost:     entities.MoneyFromRupees(100),
			AvailableQty: 10,
		}, nil
	}

	endpoint := fmt.Sprintf("%s/v1/items/%s", c.baseURL, url.PathEscape(sku))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.CatalogItem{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[catalog][client] lookup failed sku=%s err=%v", sku, err)
		return entities.CatalogItem{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.CatalogItem{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[catalog][client] lookup unexpected status sku=%s status=%d body=%s", sku, resp.StatusCode, body)
		return entities.CatalogItem{}, fmt.Errorf("inventory catalog lookup returned status %d", resp.StatusCode)
	}

	var payload catalogItemPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[catalog][client] lookup decode failed sku=%s err=%v", sku, err)
		return entities.CatalogItem{}, err
	}

	return entities.CatalogItem{
		SKU:          payload.SKU,
		Name:         payload.Name,
		UnitCost:     entities.MoneyFromRupees(payload.UnitCost),
		AvailableQty: payload.AvailableQty,
	}, nil
}

func isCatalogMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("INVENTORY_CATALOG_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
