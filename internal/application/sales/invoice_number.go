package sales

import (
	"fmt"
	"time"
)

// invoiceNumber genera el consecutivo de factura: INV-{timestamp UTC}-{n+1},
// donde n es el número de ventas existentes al momento de generar.
func invoiceNumber(now time.Time, count int64) string {
	return fmt.Sprintf("INV-%s-%d", now.UTC().Format("20060102150405"), count+1)
}
