package client

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const (
	uploadRoute = "/videoframenode/upload"
	recentRoute = "/videoframenode/recent"
)

// Client is the top level object that allows for interaction with the
// videoframenode endpoints on a ComfyUI server.
type Client struct {
	serverBaseAddress string
	serverAddress     string
	serverPort        int
	clientid          string
	httpclient        *http.Client
}

// NewClient creates a new instance of a videoframenode client.
func NewClient(serverAddress string, serverPort int) *Client {
	sbaseaddr := serverAddress + ":" + strconv.Itoa(serverPort)
	retv := &Client{
		serverBaseAddress: sbaseaddr,
		serverAddress:     serverAddress,
		serverPort:        serverPort,
		clientid:          uuid.New().String(),
		httpclient:        &http.Client{},
	}
	return retv
}

// ClientID returns the unique client ID for the connection to the backend.
func (c *Client) ClientID() string {
	return c.clientid
}

// return the underlying http client
func (c *Client) HttpClient() *http.Client {
	return c.httpclient
}

// set the underlying http client
func (c *Client) SetHttpClient(client *http.Client) {
	c.httpclient = client
}
