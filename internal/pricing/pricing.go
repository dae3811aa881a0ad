package pricing

// Параметры расчета: скидка по промокоду 12% от суммы, но не больше 2500;
// налог 5% от суммы после скидки. Оба значения округляются арифметически
// (половина вверх) целочисленной арифметикой, поэтому результат детерминирован.
const (
	discountPercent = 12
	discountCap     = 2500
	taxPercent      = 5
)

// Quote представляет разбивку стоимости бронирования.
type Quote struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

// ComputePrice рассчитывает стоимость бронирования: сумма, скидка, налог и итог.
// Функция чистая и никогда не возвращает отрицательных значений: отрицательная
// цена или число путешественников приводятся к нулю.
func ComputePrice(unitPrice, travellers int, promoApplied bool) Quote {
	if unitPrice < 0 {
		unitPrice = 0
	}
	if travellers < 0 {
		travellers = 0
	}

	subtotal := unitPrice * travellers
	discount := 0
	if promoApplied {
		discount = roundPercent(subtotal, discountPercent)
		if discount > discountCap {
			discount = discountCap
		}
	}
	tax := roundPercent(subtotal-discount, taxPercent)
	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal - discount + tax,
	}
}

// roundPercent возвращает percent% от amount, округленные до целого (половина вверх).
func roundPercent(amount, percent int) int {
	return (amount*percent + 50) / 100
}
