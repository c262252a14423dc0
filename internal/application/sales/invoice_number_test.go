package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumber_Formato(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 30, 45, 0, time.UTC)
	assert.Equal(t, "INV-20250307143045-1", invoiceNumber(now, 0))
	assert.Equal(t, "INV-20250307143045-43", invoiceNumber(now, 42))
}

func TestInvoiceNumber_UsaUTC(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	local := time.Date(2025, 3, 7, 23, 0, 0, 0, bogota) // 2025-03-08 04:00 UTC
	assert.Equal(t, "INV-20250308040000-1", invoiceNumber(local, 0))
}
