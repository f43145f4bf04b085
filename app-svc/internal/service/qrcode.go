package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// ReceiptQR renders a QR code that opens the review form for an order.
type ReceiptQR struct {
	BaseURL string
}

func (g ReceiptQR) Link(orderID string) string {
	return fmt.Sprintf("%s/reviews/write?orderId=%s", strings.TrimRight(g.BaseURL, "/"), url.QueryEscape(orderID))
}

func (g ReceiptQR) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, 256)
}
