// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale

import (
	"time"

	"golang.org/x/text/language"
)

var (
	englishMonths = [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	englishShortMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	englishWeekdays      = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	englishShortWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	englishUI            = [6]string{"Select month", "Select year", "Previous month", "Next month", "Today", "Clear"}
)

var enUS = &Locale{
	Tag:            language.AmericanEnglish,
	Months:         englishMonths,
	ShortMonths:    englishShortMonths,
	Weekdays:       englishWeekdays,
	ShortWeekdays:  englishShortWeekdays,
	FirstDayOfWeek: time.Sunday,
	ui:             englishUI,
	long: []part{
		{fieldWeekday, ""},
		{fieldMonth, ", "},
		{fieldDay, " "},
		{fieldYear, ", "},
	},
	monthYear:    []part{{fieldMonth, ""}, {fieldYear, " "}},
	numericOrder: "mdy",
	numericSep:   "/",
}

var enGB = &Locale{
	Tag:            language.BritishEnglish,
	Months:         englishMonths,
	ShortMonths:    englishShortMonths,
	Weekdays:       englishWeekdays,
	ShortWeekdays:  englishShortWeekdays,
	FirstDayOfWeek: time.Monday,
	ui:             englishUI,
	long: []part{
		{fieldWeekday, ""},
		{fieldDay, " "},
		{fieldMonth, " "},
		{fieldYear, " "},
	},
	monthYear:    []part{{fieldMonth, ""}, {fieldYear, " "}},
	numericOrder: "dmy",
	numericSep:   "/",
}

var de = &Locale{
	Tag: language.German,
	Months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	ShortMonths: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
		"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	Weekdays:       [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	ShortWeekdays:  [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	FirstDayOfWeek: time.Monday,
	ui:             [6]string{"Monat auswählen", "Jahr auswählen", "Vorheriger Monat", "Nächster Monat", "Heute", "Löschen"},
	long: []part{
		{fieldWeekday, ""},
		{fieldDay, ", "},
		{fieldMonth, ". "},
		{fieldYear, " "},
	},
	monthYear:    []part{{fieldMonth, ""}, {fieldYear, " "}},
	numericOrder: "dmy",
	numericSep:   ".",
}

var fr = &Locale{
	Tag: language.French,
	Months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	ShortMonths: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc."},
	Weekdays:       [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	ShortWeekdays:  [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	FirstDayOfWeek: time.Monday,
	ui:             [6]string{"Choisir le mois", "Choisir l'année", "Mois précédent", "Mois suivant", "Aujourd'hui", "Effacer"},
	long: []part{
		{fieldWeekday, ""},
		{fieldDay, " "},
		{fieldMonth, " "},
		{fieldYear, " "},
	},
	monthYear:    []part{{fieldMonth, ""}, {fieldYear, " "}},
	numericOrder: "dmy",
	numericSep:   "/",
}

var es = &Locale{
	Tag: language.Spanish,
	Months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	ShortMonths: [12]string{"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sept", "oct", "nov", "dic"},
	Weekdays:       [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	ShortWeekdays:  [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	FirstDayOfWeek: time.Monday,
	ui:             [6]string{"Seleccionar mes", "Seleccionar año", "Mes anterior", "Mes siguiente", "Hoy", "Borrar"},
	long: []part{
		{fieldWeekday, ""},
		{fieldDay, ", "},
		{fieldMonth, " de "},
		{fieldYear, " de "},
	},
	monthYear:    []part{{fieldMonth, ""}, {fieldYear, " de "}},
	numericOrder: "dmy",
	numericSep:   "/",
}

var nl = &Locale{
	Tag: language.Dutch,
	Months: [12]string{"januari", "februari", "maart", "april", "mei", "juni",
		"juli", "augustus", "september", "oktober", "november", "december"},
	ShortMonths: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun",
		"jul", "aug", "sep", "okt", "nov", "dec"},
	Weekdays:       [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
	ShortWeekdays:  [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
	FirstDayOfWeek: time.Monday,
	ui:             [6]string{"Maand kiezen", "Jaar kiezen", "Vorige maand", "Volgende maand", "Vandaag", "Wissen"},
	long: []part{
		{fieldWeekday, ""},
		{fieldDay, " "},
		{fieldMonth, " "},
		{fieldYear, " "},
	},
	monthYear:    []part{{fieldMonth, ""}, {fieldYear, " "}},
	numericOrder: "dmy",
	numericSep:   "-",
}

var id = &Locale{
	Tag: language.Indonesian,
	Months: [12]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember"},
	ShortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
		"Jul", "Agu", "Sep", "Okt", "Nov", "Des"},
	Weekdays:       [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"},
	ShortWeekdays:  [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"},
	FirstDayOfWeek: time.Monday,
	ui:             [6]string{"Pilih bulan", "Pilih tahun", "Bulan sebelumnya", "Bulan berikutnya", "Hari ini", "Hapus"},
	long: []part{
		{fieldWeekday, ""},
		{fieldDay, ", "},
		{fieldMonth, " "},
		{fieldYear, " "},
	},
	monthYear:    []part{{fieldMonth, ""}, {fieldYear, " "}},
	numericOrder: "dmy",
	numericSep:   "/",
}
