package cart

import "github.com/shopspring/decimal"

// Accion names the two quantity adjustments the cart view can request.
type Accion string

const (
	AccionSumar  Accion = "sumar"
	AccionRestar Accion = "restar"
)

// Line is one product entry in a visitor's cart. Titulo is the unique key
// within a cart; Precio and Imagen are snapshots taken when the line was
// first added.
type Line struct {
	Titulo   string          `json:"titulo"`
	Precio   decimal.Decimal `json:"precio"`
	Imagen   string          `json:"imagen"`
	Cantidad int             `json:"cantidad"`
}

// Subtotal is Precio × Cantidad for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// Cart is an ordered sequence of lines keyed by title. Insertion order is
// preserved for display; at most one line exists per distinct title.
type Cart []Line

// AdjustResult reports the outcome of a quantity adjustment. Cantidad is 0
// both when the line was just removed and when the title never existed; the
// merged signal is intentional.
type AdjustResult struct {
	Cantidad int  `json:"cantidad"`
	Removed  bool `json:"removed"`
}

// Add merges a product into the cart. A repeat add of the same title bumps
// the existing line's quantity and ignores the incoming price/image snapshot.
func (c Cart) Add(titulo string, precio decimal.Decimal, imagen string) Cart {
	for i := range c {
		if c[i].Titulo == titulo {
			c[i].Cantidad++
			return c
		}
	}
	return append(c, Line{
		Titulo:   titulo,
		Precio:   precio,
		Imagen:   imagen,
		Cantidad: 1,
	})
}

// Remove filters out the line with the matching title. A missing title is a
// silent no-op.
func (c Cart) Remove(titulo string) Cart {
	out := c[:0]
	for _, line := range c {
		if line.Titulo != titulo {
			out = append(out, line)
		}
	}
	return out
}

// Adjust raises or lowers the quantity of the named line. A decrement that
// reaches zero removes the line entirely.
func (c Cart) Adjust(titulo string, accion Accion) (Cart, AdjustResult) {
	for i := range c {
		if c[i].Titulo != titulo {
			continue
		}
		switch accion {
		case AccionSumar:
			c[i].Cantidad++
		case AccionRestar:
			c[i].Cantidad--
		}
		if c[i].Cantidad <= 0 {
			return c.Remove(titulo), AdjustResult{Cantidad: 0, Removed: true}
		}
		return c, AdjustResult{Cantidad: c[i].Cantidad, Removed: false}
	}
	return c, AdjustResult{}
}

// Total sums precio × cantidad over every line.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}
