package sessionlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Формат даты в query-параметрах studio-ядра
const dateFormat = "2006-01-02"

// Client клиент журнала проведённых занятий (studio-ядро).
// Отвечает на вопрос "проводилось ли уже занятие в слоте на дату" -
// после проведения переназначать план на этот ключ запрещено
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента журнала занятий
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// HasExecution проверяет, проводилось ли занятие в слоте на указанную дату
func (c *Client) HasExecution(ctx context.Context, slotID int64, date time.Time) (bool, error) {
	url := fmt.Sprintf("%s/internal/session-executions?slotId=%d&date=%s",
		c.baseURL, slotID, date.Format(dateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// Записи о проведении нет
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var status ExecutionStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return status.Executed, nil
}
