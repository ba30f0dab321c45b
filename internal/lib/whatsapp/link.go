// Package whatsapp строит исходящую ссылку в мессенджер для связи с продавцом.
//
// Ссылка вида https://wa.me/<номер>?text=<шаблон> открывается клиентом,
// ответа система не ждет.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/magabrotheeeer/marketplace-hub/internal/lib/money"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// ErrNoPhone возвращается, когда у товара не указан телефон продавца.
var ErrNoPhone = fmt.Errorf("seller phone is empty")

// ContactLink возвращает ссылку wa.me с предзаполненным сообщением,
// содержащим название товара и отформатированную цену.
func ContactLink(product *models.Product) (string, error) {
	phone := strings.ReplaceAll(product.SellerPhone, " ", "")
	if phone == "" {
		return "", ErrNoPhone
	}
	phone = strings.TrimPrefix(phone, "+")

	message := fmt.Sprintf("Bonjour, je suis intéressé(e) par votre produit : %s - %s",
		product.Title, money.Format(product.Price))

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message), nil
}
