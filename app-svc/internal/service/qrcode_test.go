package service_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptQR(t *testing.T) {
	qr := service.ReceiptQR{BaseURL: "https://kitchen.example/"}

	assert.Equal(t, "https://kitchen.example/reviews/write?orderId=ORD-001", qr.Link("ORD-001"))

	payload, err := qr.Generate("ORD-001")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
