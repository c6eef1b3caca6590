// Package i18n carries the storefront message catalogs. Two locales are
// supported; unknown locale tags fall back to Spanish, the shop's default.
package i18n

type Locale string

const (
	ES Locale = "es"
	EN Locale = "en"
)

const Default = ES

func Parse(tag string) Locale {
	switch tag {
	case string(EN):
		return EN
	case string(ES):
		return ES
	default:
		return Default
	}
}

type catalog struct {
	orderGreeting string
	orderQuestion string
	orderThanks   string
	products      map[string]string
}

var catalogs = map[Locale]catalog{
	ES: {
		orderGreeting: "🛍️ ¡Hola! Quiero realizar este pedido:",
		orderQuestion: "¿Podrías confirmar disponibilidad y método de pago?",
		orderThanks:   "¡Gracias!",
		products: map[string]string{
			"Vintage Denim Jacket": "Chaqueta Denim Vintage",
			"Retro Turtleneck":     "Cuello Alto Retro",
			"Wide Leg Trousers":    "Pantalones Wide Leg",
			"Classic 80s inspired denim jacket with authentic vintage wash.":    "Chaqueta denim clásica inspirada en los 80s con lavado vintage auténtico.",
			"Minimalist turtleneck in earthy tones, perfect for layering.":      "Cuello alto minimalista en tonos tierra, perfecto para combinar.",
			"High-waisted wide leg trousers with vintage silhouette.":           "Pantalones de talle alto wide leg con silueta vintage.",
			"100% Cotton Denim":                                                 "100% Denim de Algodón",
			"70% Wool, 30% Cashmere":                                            "70% Lana, 30% Cachemira",
			"65% Polyester, 35% Viscose":                                        "65% Poliéster, 35% Viscosa",
			"Machine wash cold":                                                 "Lavado a máquina en frío",
			"Hand wash only":                                                    "Solo lavado a mano",
			"Machine wash gentle":                                               "Lavado a máquina suave",
			"Made in Portugal":                                                  "Hecho en Portugal",
			"Made in Italy":                                                     "Hecho en Italia",
			"Made in Turkey":                                                    "Hecho en Turquía",
			"tops":                                                              "camisetas",
			"bottoms":                                                           "pantalones",
			"jackets":                                                           "chaquetas",
		},
	},
	EN: {
		orderGreeting: "🛍️ Hello! I want to place this order:",
		orderQuestion: "Could you confirm availability and payment method?",
		orderThanks:   "Thank you!",
	},
}

// TranslateProduct maps catalog text (product names, descriptions,
// care labels) into the locale. Unknown text passes through unchanged.
func (l Locale) TranslateProduct(text string) string {
	if translated, ok := catalogs[l].products[text]; ok {
		return translated
	}
	return text
}

func (l Locale) OrderGreeting() string { return catalogs[l].orderGreeting }
func (l Locale) OrderQuestion() string { return catalogs[l].orderQuestion }
func (l Locale) OrderThanks() string   { return catalogs[l].orderThanks }
