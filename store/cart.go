package store

import "fortumars-mart/models"

// CartLedger holds the shopping cart: an ordered list of lines with at most
// one line per product id. The zero value is an empty, usable ledger.
type CartLedger struct {
	lines []models.CartLine
}

// Add inserts a line with quantity 1, or increments the existing line for
// the same product id.
func (l *CartLedger) Add(p models.Product) {
	for i := range l.lines {
		if l.lines[i].ID == p.ID {
			l.lines[i].Quantity++
			return
		}
	}
	l.lines = append(l.lines, models.CartLine{Product: p, Quantity: 1})
}

// AdjustQuantity applies delta to the line for id, flooring the result at 1.
// Quantity never reaches zero through this operation; removal is explicit.
// No-op when id is not in the ledger.
func (l *CartLedger) AdjustQuantity(id string, delta int) {
	for i := range l.lines {
		if l.lines[i].ID == id {
			newQty := l.lines[i].Quantity + delta
			if newQty < 1 {
				newQty = 1
			}
			l.lines[i].Quantity = newQty
			return
		}
	}
}

// Remove deletes the line for id if present.
func (l *CartLedger) Remove(id string) {
	for i := range l.lines {
		if l.lines[i].ID == id {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Total is the sum of price times quantity over all lines.
func (l *CartLedger) Total() float64 {
	var total float64
	for _, line := range l.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines, used for the cart badge.
func (l *CartLedger) Count() int {
	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns a copy of the ledger contents.
func (l *CartLedger) Lines() []models.CartLine {
	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *CartLedger) Clear() {
	l.lines = nil
}
