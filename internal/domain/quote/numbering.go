package quote

import (
	"fmt"
	"sync"
)

// FormatNumber folio visible: COT-<año>-<NNN>.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("COT-%d-%03d", year, seq)
}

// ParseNumber extrae año y secuencia de un folio; ok=false si no tiene el formato.
func ParseNumber(number string) (year, seq int, ok bool) {
	n, err := fmt.Sscanf(number, "COT-%d-%d", &year, &seq)
	if err != nil || n != 2 {
		return 0, 0, false
	}
	return year, seq, true
}

// Numberer contador monótono por año. Borrar cotizaciones nunca reutiliza un folio.
type Numberer struct {
	mu   sync.Mutex
	last map[int]int
}

// NewNumberer contador vacío.
func NewNumberer() *Numberer {
	return &Numberer{last: make(map[int]int)}
}

// Next reserva el siguiente folio del año.
func (n *Numberer) Next(year int) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last[year]++
	return FormatNumber(year, n.last[year])
}

// Observe avanza el contador para no repetir folios ya existentes (datos semilla).
func (n *Numberer) Observe(number string) {
	year, seq, ok := ParseNumber(number)
	if !ok {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if seq > n.last[year] {
		n.last[year] = seq
	}
}
