package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

var messages = buildCatalog()

var translations = map[language.Tag]map[string]string{
	language.English: {
		MsgRequestedAmount:  MsgRequestedAmount,
		MsgRate:             MsgRate,
		MsgMonthlyRepayment: MsgMonthlyRepayment,
		MsgTotalRepayment:   MsgTotalRepayment,
		MsgUnavailable:      MsgUnavailable,
	},
	language.German: {
		MsgRequestedAmount:  "Angefragter Betrag: %s%s",
		MsgRate:             "Zinssatz: %s%%",
		MsgMonthlyRepayment: "Monatliche Rate: %s%s",
		MsgTotalRepayment:   "Gesamtrückzahlung: %s%s",
		MsgUnavailable:      "Ein Kredit über den angefragten Betrag ist derzeit nicht verfügbar",
	},
}

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Languages lists the languages with a translated report
func Languages() []language.Tag {
	return messages.Languages()
}
