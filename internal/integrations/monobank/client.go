package monobank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент платёжного провайдера (merchant + personal API)
// Авторизация через заголовок X-Token
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateInvoice создает инвойс на оплату
// Сумма в минимальных единицах валюты, reference используется для корреляции с бронированием
func (c *Client) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal create invoice request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/merchant/invoice/create", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Token", c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var invoice Invoice
		if err := json.NewDecoder(resp.Body).Decode(&invoice); err != nil {
			return nil, fmt.Errorf("%w: decode invoice: %v", ErrInvalidResponse, err)
		}
		if invoice.InvoiceID == "" || invoice.PageURL == "" {
			return nil, fmt.Errorf("%w: empty invoiceId or pageUrl", ErrInvalidResponse)
		}
		c.log.Info("monobank: invoice %s created for reference %s", invoice.InvoiceID, req.MerchantPaymInfo.Reference)
		return &invoice, nil
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, c.providerError(resp)
	}
}

// GetInvoiceStatus получает текущее состояние инвойса
func (c *Client) GetInvoiceStatus(ctx context.Context, invoiceID string) (*InvoiceStatus, error) {
	reqURL := c.baseURL + "/api/merchant/invoice/status?invoiceId=" + url.QueryEscape(invoiceID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("X-Token", c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var status InvoiceStatus
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			return nil, fmt.Errorf("%w: decode invoice status: %v", ErrInvalidResponse, err)
		}
		return &status, nil
	case http.StatusNotFound:
		return nil, ErrInvoiceNotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, c.providerError(resp)
	}
}

// GetJar получает банку по идентификатору из personal API
// Банка ищется по id либо по короткому sendId
func (c *Client) GetJar(ctx context.Context, jarID string) (*Jar, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/personal/client-info", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("X-Token", c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var info clientInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, fmt.Errorf("%w: decode client info: %v", ErrInvalidResponse, err)
		}
		for i := range info.Jars {
			if info.Jars[i].ID == jarID || info.Jars[i].SendID == jarID {
				return &info.Jars[i], nil
			}
		}
		return nil, ErrJarNotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, c.providerError(resp)
	}
}

// providerError разбирает тело ошибки провайдера
func (c *Client) providerError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
	}

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.ErrText == "" {
		return fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode, string(body))
	}

	c.log.Warn("monobank: provider error %s: %s", apiErr.ErrCode, apiErr.ErrText)
	return fmt.Errorf("%w: %s: %s", ErrProvider, apiErr.ErrCode, apiErr.ErrText)
}
