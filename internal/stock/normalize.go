package stock

import "strconv"

// PlentySentinel -- так поставщик помечает позиции, которых больше десяти.
const PlentySentinel = ">10"

// NormalizeQuantity переводит текст количества из файла остатков в число.
// Правила:
//
//	">10"   -> plenty (условные "много", по умолчанию 100)
//	"1"     -> 0 (последний экземпляр не продаем)
//	число n -> n
//	иначе   -> 0
//
// Второе значение false, если текст не удалось разобрать.
func NormalizeQuantity(raw string, plenty int) (int, bool) {
	switch raw {
	case PlentySentinel:
		return plenty, true
	case "1":
		return 0, true
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}
