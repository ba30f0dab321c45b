package product

import "errors"

// ValidationError ошибка проверки черновика товара. Проверки идут по порядку,
// первая же ошибка прерывает сохранение: пользователю показывается ровно одно
// сообщение, черновик и хранилище не меняются.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ErrNotFound возвращается, когда товар не существует или не принадлежит продавцу.
var ErrNotFound = errors.New("product not found")
