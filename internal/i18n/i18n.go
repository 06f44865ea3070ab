// Package i18n provides internationalization support for the cargo pack service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Missing locales and keys fall back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale returns the first supported language of the Accept-Language
// header, or DefaultLocale. Quality values are ignored; order wins.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	translator := GetTranslator()
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if translator.Supports(lang) {
			return lang
		}
	}

	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:        "Invalid request",
		ErrKeyInvalidRequestBody:    "Invalid request body",
		ErrKeyInternalError:         "An unexpected error occurred",
		ErrKeyNotFound:              "Not found",
		ErrKeyValidationItems:       "items: at least one item is required",
		ErrKeyValidationItem:        "items: dimensions, weight and quantity must be positive",
		ErrKeyValidationContainer:   "container: provide positive dimensions or a known container_code",
		ErrKeyTooManyInstances:      "items: too many item instances for one run",
		ErrKeyUnknownAlgorithm:      "algorithm: must be one of ffd, extreme-points, genetic, auto",
		ErrKeyUnknownContainer:      "Unknown container code",
		ErrKeyRunHistoryUnavailable: "Run history is not available",
		ErrKeyOptimizationFailed:    "Optimization failed",
		ErrKeyTimeout:               "The request took too long",

		MsgKeyContainerFits:         "Smallest container that fits the cargo with a 30% buffer",
		MsgKeyNoContainerFits:       "Cargo exceeds the largest container; consider splitting the shipment",
		MsgKeyOptimizationStarted:   "Optimization started",
		MsgKeyOptimizationCompleted: "Optimization completed",
	},
	"pt": {
		ErrKeyInvalidRequest:        "Requisição inválida",
		ErrKeyInvalidRequestBody:    "Corpo da requisição inválido",
		ErrKeyInternalError:         "Ocorreu um erro inesperado",
		ErrKeyNotFound:              "Não encontrado",
		ErrKeyValidationItems:       "items: é necessário pelo menos um item",
		ErrKeyValidationItem:        "items: dimensões, peso e quantidade devem ser positivos",
		ErrKeyValidationContainer:   "container: informe dimensões positivas ou um container_code conhecido",
		ErrKeyTooManyInstances:      "items: instâncias demais para uma execução",
		ErrKeyUnknownAlgorithm:      "algorithm: deve ser ffd, extreme-points, genetic ou auto",
		ErrKeyUnknownContainer:      "Código de contêiner desconhecido",
		ErrKeyRunHistoryUnavailable: "Histórico de execuções indisponível",
		ErrKeyOptimizationFailed:    "A otimização falhou",
		ErrKeyTimeout:               "A requisição demorou demais",

		MsgKeyContainerFits:         "Menor contêiner que comporta a carga com 30% de folga",
		MsgKeyNoContainerFits:       "A carga excede o maior contêiner; considere dividir o embarque",
		MsgKeyOptimizationStarted:   "Otimização iniciada",
		MsgKeyOptimizationCompleted: "Otimização concluída",
	},
	"nl": {
		ErrKeyInvalidRequest:        "Ongeldig verzoek",
		ErrKeyInvalidRequestBody:    "Ongeldige aanvraag body",
		ErrKeyInternalError:         "Er is een onverwachte fout opgetreden",
		ErrKeyNotFound:              "Niet gevonden",
		ErrKeyValidationItems:       "items: er is minstens één item vereist",
		ErrKeyValidationItem:        "items: afmetingen, gewicht en aantal moeten positief zijn",
		ErrKeyValidationContainer:   "container: geef positieve afmetingen of een bekende container_code op",
		ErrKeyTooManyInstances:      "items: te veel exemplaren voor één berekening",
		ErrKeyUnknownAlgorithm:      "algorithm: moet ffd, extreme-points, genetic of auto zijn",
		ErrKeyUnknownContainer:      "Onbekende containercode",
		ErrKeyRunHistoryUnavailable: "Berekeningsgeschiedenis is niet beschikbaar",
		ErrKeyOptimizationFailed:    "Optimalisatie mislukt",
		ErrKeyTimeout:               "Het verzoek duurde te lang",

		MsgKeyContainerFits:         "Kleinste container waarin de lading met 30% marge past",
		MsgKeyNoContainerFits:       "De lading past niet in de grootste container; overweeg de zending te splitsen",
		MsgKeyOptimizationStarted:   "Optimalisatie gestart",
		MsgKeyOptimizationCompleted: "Optimalisatie voltooid",
	},
}
