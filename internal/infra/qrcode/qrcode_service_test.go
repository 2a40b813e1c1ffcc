package qrcode

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestGenerateListingQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService("https://borgo.example.it", 256, "M")

	png, err := svc.GenerateListingQR(uuid.New())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestGenerateListingQR_DistinctListingsDistinctCodes(t *testing.T) {
	svc := NewQRCodeService("https://borgo.example.it/", 256, "H")

	first, err := svc.GenerateListingQR(uuid.New())
	require.NoError(t, err)
	second, err := svc.GenerateListingQR(uuid.New())
	require.NoError(t, err)

	assert.False(t, bytes.Equal(first, second))
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService("https://borgo.example.it", 128, "X")

	png, err := svc.GenerateListingQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
