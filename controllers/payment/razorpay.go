package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/harshilv17/Zivara/config"
)

// razorpayOrderResponse is the subset of the gateway's order object we use.
type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// GatewayClient talks to the Razorpay orders API. Credentials come from the
// config handed in at construction, never from the environment at call time.
type GatewayClient struct {
	cfg    config.Config
	client *http.Client
}

func NewGatewayClient(cfg config.Config) *GatewayClient {
	return &GatewayClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateOrder asks the gateway for an order sized in paise and returns its id.
func (g *GatewayClient) CreateOrder(amountPaise int64, receipt string) (string, error) {
	payload := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", g.cfg.RazorpayAPIURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(g.cfg.RazorpayKeyID, g.cfg.RazorpayKeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway error (%d): %s", resp.StatusCode, string(body))
	}

	var gatewayResp razorpayOrderResponse
	if err := json.Unmarshal(body, &gatewayResp); err != nil {
		return "", fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if gatewayResp.Error != nil {
		return "", fmt.Errorf("gateway error: %s", gatewayResp.Error.Description)
	}
	if gatewayResp.ID == "" {
		return "", fmt.Errorf("gateway returned empty order id")
	}
	return gatewayResp.ID, nil
}

// VerifySignature recomputes the HMAC-SHA256 over "orderID|paymentID" and
// compares it to the client-supplied signature in constant time.
func VerifySignature(secret, gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
