package cart

import (
	"github.com/m04kA/cappadocia-tours/internal/domain"
)

// Pricing ставки расчета итогов
type Pricing struct {
	TaxRate            float64
	BundleDiscountRate float64
}

// DefaultPricing НДС 18%, скидка за полный набор 5%
var DefaultPricing = Pricing{
	TaxRate:            0.18,
	BundleDiscountRate: 0.05,
}

// Totals итоги корзины
type Totals struct {
	Subtotal float64
	Discount float64
	// Tax считается от суммы до скидки
	Tax   float64
	Total float64
}

// State снимок корзины после очередной операции
type State struct {
	Items          []domain.Recommendation
	Bundle         *domain.Bundle
	BundleComplete bool
	Open           bool
	Totals         Totals
}

// Cart корзина одной сессии. Не потокобезопасна: синхронизацию обеспечивает владелец
type Cart struct {
	pricing Pricing
	items   []domain.Recommendation
	bundle  *domain.Bundle
	open    bool
}

// New создает пустую корзину
func New(pricing Pricing) *Cart {
	return &Cart{pricing: pricing}
}

// Add добавляет позицию. Повторное добавление того же ID ничего не меняет.
// Корзина помечается открытой.
func (c *Cart) Add(item domain.Recommendation) State {
	c.open = true
	if c.indexOf(item.ID) < 0 {
		c.items = append(c.items, item)
	}
	return c.State()
}

// Remove удаляет позицию, если она есть
func (c *Cart) Remove(id int64) State {
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i:i], c.items[i+1:]...)
	}
	return c.State()
}

// Clear удаляет все позиции. Активный набор остается
func (c *Cart) Clear() State {
	c.items = nil
	return c.State()
}

// SetBundle устанавливает активный набор; nil снимает его
func (c *Cart) SetBundle(bundle *domain.Bundle) State {
	if bundle == nil {
		c.bundle = nil
		return c.State()
	}

	copied := *bundle
	copied.ItemIDs = append([]int64(nil), bundle.ItemIDs...)
	c.bundle = &copied
	return c.State()
}

// Close помечает корзину закрытой (после оформления)
func (c *Cart) Close() {
	c.open = false
}

// Len количество позиций
func (c *Cart) Len() int {
	return len(c.items)
}

// BundleComplete true, если все позиции активного набора лежат в корзине.
// Пустой набор скидку не дает.
func (c *Cart) BundleComplete() bool {
	if c.bundle == nil || len(c.bundle.ItemIDs) == 0 {
		return false
	}
	for _, id := range c.bundle.ItemIDs {
		if c.indexOf(id) < 0 {
			return false
		}
	}
	return true
}

// CalculateTotal считает итоги: total = subtotal * (1 - discountRate) * (1 + taxRate)
func (c *Cart) CalculateTotal() Totals {
	if len(c.items) == 0 {
		return Totals{}
	}

	var subtotal float64
	for _, item := range c.items {
		subtotal += item.Price
	}

	discountRate := 0.0
	if c.BundleComplete() {
		discountRate = c.pricing.BundleDiscountRate
	}

	return Totals{
		Subtotal: subtotal,
		Discount: subtotal * discountRate,
		Tax:      subtotal * c.pricing.TaxRate,
		Total:    subtotal * (1 - discountRate) * (1 + c.pricing.TaxRate),
	}
}

// State возвращает копию текущего состояния
func (c *Cart) State() State {
	items := make([]domain.Recommendation, len(c.items))
	copy(items, c.items)

	var bundle *domain.Bundle
	if c.bundle != nil {
		copied := *c.bundle
		copied.ItemIDs = append([]int64(nil), c.bundle.ItemIDs...)
		bundle = &copied
	}

	return State{
		Items:          items,
		Bundle:         bundle,
		BundleComplete: c.BundleComplete(),
		Open:           c.open,
		Totals:         c.CalculateTotal(),
	}
}

func (c *Cart) indexOf(id int64) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
