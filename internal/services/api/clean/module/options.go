package module

import (
	"txdc/internal/core/normalize"
	"txdc/internal/platform/config"
	"txdc/internal/services/api/clean/service"

	"golang.org/x/text/language"
)

// Options controls the clean service defaults and request limits
type Options struct {
	Locale                 language.Tag
	Form                   normalize.Form
	FoldWidth              bool
	KeepWhitespaceControls bool
	MaxBytes               int64
}

// FromConfig reads CLEAN_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("CLEAN_")
	form, _ := normalize.ParseForm(cc.MayEnum("FORM", "nfkc", "none", "nfc", "nfd", "nfkc", "nfkd"))
	return Options{
		Locale:                 cc.MayTag("LOCALE", language.French),
		Form:                   form,
		FoldWidth:              cc.MayBool("FOLD_WIDTH", false),
		KeepWhitespaceControls: cc.MayBool("KEEP_WS_CONTROLS", false),
		MaxBytes:               cc.MayInt64("MAX_BYTES", 0),
	}
}

// an undetermined locale leaves the service default in place
func (o Options) defaults() service.Defaults {
	locale := ""
	if o.Locale != language.Und {
		locale = o.Locale.String()
	}
	return service.Defaults{
		Locale:                 locale,
		Form:                   o.Form,
		FoldWidth:              o.FoldWidth,
		KeepWhitespaceControls: o.KeepWhitespaceControls,
	}
}
