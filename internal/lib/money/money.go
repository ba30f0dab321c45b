// Package money форматирует цены для исходящего текста: карточек товара
// и сообщений мессенджера. Валюта одна (доллар США), конвертации нет.
package money

import (
	"strconv"
	"strings"
)

// Format возвращает цену в виде строки вида "1 234,56 $US":
// группировка разрядов пробелом, десятичная запятая, два знака после запятой.
func Format(price float64) string {
	raw := strconv.FormatFloat(price, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	parts := strings.SplitN(raw, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	offset := len(intPart) % 3
	if offset == 0 {
		offset = 3
	}
	grouped.WriteString(intPart[:offset])
	for i := offset; i < len(intPart); i += 3 {
		grouped.WriteByte(' ')
		grouped.WriteString(intPart[i : i+3])
	}

	return sign + grouped.String() + "," + fracPart + " $US"
}
