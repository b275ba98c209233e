package client

import (
	"encoding/json"
	"fmt"

	"cleanbook/pkg/model"
)

// BookingClient talks to a running booking service.
type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseUrl string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *BookingClient) HTTP() *HttpClient {
	return c.httpClient
}

func (c *BookingClient) Root() (*Response, error) {
	return c.httpClient.GET("/")
}

func (c *BookingClient) Submit(body any) (*Response, error) {
	return c.httpClient.POST("/api/book", body)
}

func (c *BookingClient) SubmitRaw(rawBody []byte) (*Response, error) {
	return c.httpClient.POSTRaw("/api/book", rawBody)
}

func (c *BookingClient) Diagnostics() (*Response, error) {
	return c.httpClient.GET("/test")
}

func (c *BookingClient) Schemas() (*Response, error) {
	return c.httpClient.GET("/schema")
}

func (c *BookingClient) Health() (*Response, error) {
	return c.httpClient.GET("/health")
}

func (c *BookingClient) Ready() (*Response, error) {
	return c.httpClient.GET("/ready")
}

// DecodeBooking unwraps the data field of a successful submission.
func (c *BookingClient) DecodeBooking(resp *Response) (*model.BookingRecord, error) {
	var wrapper model.BookingResponse
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode booking response:\n%s\n%w", resp.String(), err)
	}
	if !wrapper.Success {
		return nil, fmt.Errorf("booking was not accepted:\n%s", resp.String())
	}
	return &wrapper.Data, nil
}
