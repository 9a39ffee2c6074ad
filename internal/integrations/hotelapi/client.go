package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с API отелей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента API отелей
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableRooms запрашивает свободные номера отеля на период [checkIn, checkOut).
// checkIn и checkOut - канонические инстанты (см. domain.ToAPIInstant)
func (c *Client) GetAvailableRooms(ctx context.Context, hotelID int64, checkIn, checkOut string) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("checkIn", checkIn)
	query.Set("checkOut", checkOut)
	query.Set("hotelId", strconv.FormatInt(hotelID, 10))

	rooms, err := getList[Room](ctx, c, "/api/Rooms/available", query)
	if err != nil {
		return nil, err
	}
	return toDomainRooms(rooms), nil
}

// GetRoomsByHotel получает все номера отеля
func (c *Client) GetRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("hotelId", strconv.FormatInt(hotelID, 10))

	rooms, err := getList[Room](ctx, c, "/api/Rooms", query)
	if err != nil {
		return nil, err
	}
	return toDomainRooms(rooms), nil
}

// GetReservations получает полный список бронирований
func (c *Client) GetReservations(ctx context.Context) ([]domain.Reservation, error) {
	items, err := getList[Reservation](ctx, c, "/api/Reservations", nil)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Reservation, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// GetHotels получает список отелей
func (c *Client) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	items, err := getList[Hotel](ctx, c, "/api/Hotels", nil)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Hotel, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// GetBills получает список счетов
func (c *Client) GetBills(ctx context.Context) ([]domain.Bill, error) {
	items, err := getList[Bill](ctx, c, "/api/Bills", nil)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Bill, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// CountUsers возвращает общее число пользователей (опционально с фильтром по роли)
func (c *Client) CountUsers(ctx context.Context, role string) (int, error) {
	query := url.Values{}
	query.Set("page", "1")
	query.Set("pageSize", "1")
	if role != "" {
		query.Set("role", role)
	}

	body, err := c.get(ctx, "/api/Users", query)
	if err != nil {
		return 0, err
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, fmt.Errorf("%w: failed to decode users response: %v", ErrInvalidResponse, err)
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return 0, nil
	}

	var page pagedResult
	if err := json.Unmarshal(envelope.Data, &page); err != nil {
		return 0, fmt.Errorf("%w: failed to decode users page: %v", ErrInvalidResponse, err)
	}

	return page.TotalCount, nil
}

// CreateReservation отправляет запрос на бронирование.
// Отказ сервиса возвращается как *RejectionError (errors.Is(err, ErrRejected))
func (c *Client) CreateReservation(ctx context.Context, booking *domain.BookingRequest) (*domain.Reservation, error) {
	payload, err := json.Marshal(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode booking request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/Reservations", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return decodeCreatedReservation(body)
	case resp.StatusCode == http.StatusBadRequest ||
		resp.StatusCode == http.StatusConflict ||
		resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, decodeRejection(body, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// get выполняет GET запрос и возвращает тело успешного ответа
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}
	return body, nil
}

// getList выполняет GET запрос и нормализует ответ в список:
// поддерживается как "голый" массив, так и конверт {success, data: [...]}
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	items, err := decodeList[T](body)
	if err != nil {
		c.log.Warn("hotelapi: malformed list response from %s: %v", path, err)
		return nil, err
	}
	return items, nil
}

func decodeList[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []T{}, nil
	}

	if body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("%w: failed to decode list: %v", ErrInvalidResponse, err)
		}
		return items, nil
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || data[0] != '[' {
		// Конверт без массива данных трактуем как пустой результат
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}
	return items, nil
}

func decodeCreatedReservation(body []byte) (*domain.Reservation, error) {
	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Сервис может вернуть как конверт, так и сам объект бронирования
	data := envelope.Data
	if !envelope.Success || len(data) == 0 || string(data) == "null" {
		var raw Reservation
		if err := json.Unmarshal(body, &raw); err == nil && raw.ID != 0 {
			res := raw.ToDomain()
			return &res, nil
		}
		return nil, &RejectionError{Message: rejectionMessage(envelope.Message), Errors: envelope.Errors}
	}

	var created Reservation
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode reservation: %v", ErrInvalidResponse, err)
	}
	res := created.ToDomain()
	return &res, nil
}

func decodeRejection(body []byte, statusCode int) error {
	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &RejectionError{Message: fmt.Sprintf("booking rejected with status %d", statusCode)}
	}
	return &RejectionError{Message: rejectionMessage(envelope.Message), Errors: envelope.Errors}
}

func rejectionMessage(message string) string {
	if message == "" {
		return "booking failed"
	}
	return message
}

func toDomainRooms(rooms []Room) []domain.Room {
	result := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, r.ToDomain())
	}
	return result
}
