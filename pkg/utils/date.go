package utils

import (
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// LoadLocation carrega o fuso informado, caindo para UTC-3 fixo quando
// a base de fusos não está disponível no ambiente
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}

	return loc
}

// StartOfDay retorna a meia-noite do dia de t no fuso loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// FormatAPIInstant formata um instante em UTC com milissegundos, como as APIs esperam
func FormatAPIInstant(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
