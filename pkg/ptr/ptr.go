package ptr

// Ptr возвращает указатель на копию значения
func Ptr[T any](v T) *T {
	return &v
}

// StringOrNil возвращает nil для пустой строки (после обрезки пробелов делается вызывающей стороной)
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
