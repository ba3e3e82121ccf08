package service

// Divide разбивает список на части по n элементов.
// Последняя часть может быть короче n.
func Divide[T any](items []T, n int) [][]T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	parts := make([][]T, 0, (len(items)+n-1)/n)
	for start := 0; start < len(items); start += n {
		end := start + n
		if end > len(items) {
			end = len(items)
		}
		parts = append(parts, items[start:end])
	}
	return parts
}
