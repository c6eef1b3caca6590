// Package whatsapp builds the wa.me deep links the checkout hands out.
// Opening the link is the client's business; composing it ends here.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/urbandrop/storefront/internal/core/port"
)

var _ port.CheckoutMessenger = (*Messenger)(nil)

const baseURL = "https://wa.me/"

type Messenger struct {
	phone string
}

// New returns a messenger addressing the given phone number in
// international format without the leading plus, e.g. "5215634596804".
func New(phone string) Messenger {
	return Messenger{phone}
}

func (m Messenger) Recipient() string {
	return m.phone
}

// OrderLink embeds the message into a wa.me URL. Spaces are encoded as
// %20, not +, matching what WhatsApp expects in the text parameter.
func (m Messenger) OrderLink(message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return baseURL + m.phone + "?text=" + text
}
