package paypalControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultBaseURL = "https://api-m.sandbox.paypal.com"

// getPayPalConfig reads gateway credentials from the environment.
func getPayPalConfig() (baseURL, clientID, secret string, err error) {
	baseURL = os.Getenv("PAYPAL_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	clientID = os.Getenv("PAYPAL_CLIENT_ID")
	secret = os.Getenv("PAYPAL_SECRET")

	if clientID == "" || secret == "" {
		return "", "", "", fmt.Errorf("paypal configuration missing")
	}
	return baseURL, clientID, secret, nil
}

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ErrorDescription string `json:"error_description"`
}

// GenerateAccessToken exchanges the client credentials for a bearer token.
func GenerateAccessToken() (string, error) {
	baseURL, clientID, secret, err := getPayPalConfig()
	if err != nil {
		return "", err
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest("POST", baseURL+"/v1/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(clientID, secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach PayPal: %v", err)
	}
	defer resp.Body.Close()

	var data tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token error: %s", data.ErrorDescription)
	}
	return data.AccessToken, nil
}

func doPayPalRequest(method, path string, payload interface{}) (map[string]interface{}, error) {
	baseURL, _, _, err := getPayPalConfig()
	if err != nil {
		return nil, err
	}
	token, err := GenerateAccessToken()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach PayPal: %v", err)
	}
	defer resp.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg, ok := data["message"].(string); ok {
			return nil, fmt.Errorf("paypal error: %s", msg)
		}
		return nil, fmt.Errorf("paypal error: status %d", resp.StatusCode)
	}
	return data, nil
}

// CreatePayment opens a PayPal order with CAPTURE intent for the amount.
func CreatePayment(amount string) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": "USD",
					"value":         amount,
				},
			},
		},
	}
	return doPayPalRequest("POST", "/v2/checkout/orders", payload)
}

// CapturePayment captures an approved PayPal order.
func CapturePayment(paypalOrderID string) (map[string]interface{}, error) {
	return doPayPalRequest("POST", "/v2/checkout/orders/"+paypalOrderID+"/capture", nil)
}

// GetPaymentDetails fetches the current state of a PayPal order.
func GetPaymentDetails(paypalOrderID string) (map[string]interface{}, error) {
	return doPayPalRequest("GET", "/v2/checkout/orders/"+paypalOrderID, nil)
}

// -------- Handlers --------

type CreatePaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// POST /paypal/create
func CreatePaymentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}
		result, err := CreatePayment(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "PayPal order created", "data": result})
	}
}

// POST /paypal/capture/:paypal_order_id
func CapturePaymentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("paypal_order_id")
		result, err := CapturePayment(id)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "PayPal order captured", "data": result})
	}
}

// GET /paypal/:paypal_order_id
func GetPaymentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("paypal_order_id")
		result, err := GetPaymentDetails(id)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "PayPal order details", "data": result})
	}
}
