// Package orders contiene las reglas puras del ciclo de vida de un pedido:
// generación de IDs, importe, clasificación "pasado", validación y proyección de la lista.
package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID genera el ID de un pedido: marca de tiempo de creación (hasta milisegundos)
// más un sufijo aleatorio, para que dos altas dentro del mismo segundo no colisionen.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ORD-%s%03d-%s", now.Format("20060102150405"), now.Nanosecond()/int(time.Millisecond), suffix)
}
