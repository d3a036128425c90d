package apierrors

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/mooosty/bckndmstr/pkg/translator"
)

// JsonErr is the failure side of the API response envelope. Consumers
// rely on this exact shape.
type JsonErr struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return e.Message
}

// CreateError builds the failure envelope with a translated message.
func CreateError(msgKey string, lang string) JsonErr {
	return JsonErr{Message: GetTransErrorMsg(msgKey, lang)}
}

// CreateErrorWithDetails builds the failure envelope with a translated
// message and an untranslated detail string.
func CreateErrorWithDetails(msgKey string, lang string, details string) JsonErr {
	err := CreateError(msgKey, lang)
	err.Details = details
	return err
}

// GetTransErrorMsg retrieves the translated error message, falling
// back to the message key itself.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
