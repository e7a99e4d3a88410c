// Package i18n translates the labels shown by the workout windows.
package i18n

import (
	"fmt"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// Supported lists the languages with translations. English is the fallback.
var Supported = []string{"en", "pl", "pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Full Workout Timer": {
		"pl": "Cały trening",
		"pt": "Treino completo",
		"es": "Entrenamiento completo",
		"ru": "Вся тренировка",
	},
	"Set %d/%d Timer": {
		"pl": "Seria %d/%d",
		"pt": "Série %d/%d",
		"es": "Serie %d/%d",
		"ru": "Подход %d/%d",
	},
	"Exercise %d/%d Timer": {
		"pl": "Ćwiczenie %d/%d",
		"pt": "Exercício %d/%d",
		"es": "Ejercicio %d/%d",
		"ru": "Упражнение %d/%d",
	},
	"Set Rest Timer": {
		"pl": "Przerwa między seriami",
		"pt": "Descanso entre séries",
		"es": "Descanso entre series",
		"ru": "Отдых между подходами",
	},
	"Exercise Rest Timer": {
		"pl": "Przerwa między ćwiczeniami",
		"pt": "Descanso entre exercícios",
		"es": "Descanso entre ejercicios",
		"ru": "Отдых между упражнениями",
	},
	"Exercise time": {
		"pl": "Czas ćwiczenia",
		"pt": "Tempo de exercício",
		"es": "Tiempo de ejercicio",
		"ru": "Время упражнения",
	},
	"Exercises per set": {
		"pl": "Ćwiczeń w serii",
		"pt": "Exercícios por série",
		"es": "Ejercicios por serie",
		"ru": "Упражнений в подходе",
	},
	"Rest between exercises": {
		"pl": "Przerwa między ćwiczeniami",
		"pt": "Descanso entre exercícios",
		"es": "Descanso entre ejercicios",
		"ru": "Отдых между упражнениями",
	},
	"Number of sets": {
		"pl": "Liczba serii",
		"pt": "Número de séries",
		"es": "Número de series",
		"ru": "Количество подходов",
	},
	"Rest between sets": {
		"pl": "Przerwa między seriami",
		"pt": "Descanso entre séries",
		"es": "Descanso entre series",
		"ru": "Отдых между подходами",
	},
	"sec": {
		"pl": "s",
		"pt": "s",
		"es": "s",
		"ru": "сек",
	},
	"Start": {
		"pl": "Start",
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Quit": {
		"pl": "Wyjdź",
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Sound cues": {
		"pl": "Sygnały dźwiękowe",
		"pt": "Sinais sonoros",
		"es": "Señales sonoras",
		"ru": "Звуковые сигналы",
	},
	"Workout finished!": {
		"pl": "Trening zakończony!",
		"pt": "Treino concluído!",
		"es": "¡Entrenamiento terminado!",
		"ru": "Тренировка окончена!",
	},
	"Press q or Esc to quit": {
		"pl": "Naciśnij q lub Esc, aby wyjść",
		"pt": "Pressione q ou Esc para sair",
		"es": "Pulse q o Esc para salir",
		"ru": "Нажмите q или Esc для выхода",
	},
	"New workout": {
		"pl": "Nowy trening",
		"pt": "Novo treino",
		"es": "Nuevo entrenamiento",
		"ru": "Новая тренировка",
	},
	"Status: %s": {
		"pl": "Stan: %s",
		"pt": "Estado: %s",
		"es": "Estado: %s",
		"ru": "Статус: %s",
	},
	"idle": {
		"pl": "bezczynny",
		"pt": "parado",
		"es": "inactivo",
		"ru": "ожидание",
	},
	"Total workout time: %s": {
		"pl": "Łączny czas treningu: %s",
		"pt": "Tempo total de treino: %s",
		"es": "Tiempo total: %s",
		"ru": "Общее время: %s",
	},
}

// Translator looks up labels for one language.
type Translator struct {
	lang string
}

// New returns a translator for lang. Unknown languages fall back to English.
func New(lang string) *Translator {
	return &Translator{lang: normalize(lang)}
}

// Detect picks the language to use: override when set, otherwise the first
// system locale, otherwise English.
func Detect(override string) string {
	if override = strings.TrimSpace(override); override != "" {
		return normalize(override)
	}
	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		return "en"
	}
	return normalize(userLocales[0])
}

// Lang returns the active language code.
func (translator *Translator) Lang() string {
	return translator.lang
}

// T translates key.
func (translator *Translator) T(key string) string {
	if translated, ok := translations[key][translator.lang]; ok {
		return translated
	}
	return key
}

// Tf translates format and applies args.
func (translator *Translator) Tf(format string, args ...any) string {
	return fmt.Sprintf(translator.T(format), args...)
}

// normalize maps "pt_BR", "es-ES" and the like to a supported code.
func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, lang := range Supported {
		if strings.HasPrefix(tag, lang) {
			return lang
		}
	}
	return "en"
}
