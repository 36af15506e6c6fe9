// Package i18n picks the user-facing strings for the active locale.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Strings are the localized labels the screens render.
type Strings struct {
	Tag language.Tag

	NewNote      string
	Untitled     string
	DeleteTitle  string
	AreYouSure   string
	Delete       string
	Cancel       string
	Settings     string
	Notes        string
	Loading      string
	Saving       string
	Deleting     string
	EmptyList    string
	EmptyPreview string

	NotFound     string
	LoadFailed   string
	SaveFailed   string
	DeleteFailed string
	Shared       string
	ShareFailed  string
	Unsaved      string

	Theme          string
	SortOrder      string
	SortUpdated    string
	SortTitle      string
	RenderMarkdown string
	On             string
	Off            string
}

var english = Strings{
	Tag:            language.English,
	NewNote:        "New note",
	Untitled:       "Untitled",
	DeleteTitle:    "Delete note",
	AreYouSure:     "Are you sure you want to delete this note?",
	Delete:         "Delete",
	Cancel:         "Cancel",
	Settings:       "Settings",
	Notes:          "Notes",
	Loading:        "Loading…",
	Saving:         "Saving…",
	Deleting:       "Deleting…",
	EmptyList:      "No notes yet. Press n to write one.",
	EmptyPreview:   "Select a note to preview it.",
	NotFound:       "That note no longer exists; starting a new one.",
	LoadFailed:     "Could not load the note",
	SaveFailed:     "Could not save the note",
	DeleteFailed:   "Could not delete the note",
	Shared:         "Copied to clipboard",
	ShareFailed:    "Could not share the note",
	Unsaved:        "Unsaved changes: ctrl+s saves, esc again discards",
	Theme:          "Theme",
	SortOrder:      "Sort by",
	SortUpdated:    "Last modified",
	SortTitle:      "Title",
	RenderMarkdown: "Render Markdown",
	On:             "on",
	Off:            "off",
}

var german = Strings{
	Tag:            language.German,
	NewNote:        "Neue Notiz",
	Untitled:       "Ohne Titel",
	DeleteTitle:    "Notiz löschen",
	AreYouSure:     "Soll diese Notiz wirklich gelöscht werden?",
	Delete:         "Löschen",
	Cancel:         "Abbrechen",
	Settings:       "Einstellungen",
	Notes:          "Notizen",
	Loading:        "Wird geladen…",
	Saving:         "Wird gespeichert…",
	Deleting:       "Wird gelöscht…",
	EmptyList:      "Noch keine Notizen. Mit n eine neue anlegen.",
	EmptyPreview:   "Notiz auswählen, um sie anzuzeigen.",
	NotFound:       "Diese Notiz existiert nicht mehr; neue Notiz begonnen.",
	LoadFailed:     "Notiz konnte nicht geladen werden",
	SaveFailed:     "Notiz konnte nicht gespeichert werden",
	DeleteFailed:   "Notiz konnte nicht gelöscht werden",
	Shared:         "In die Zwischenablage kopiert",
	ShareFailed:    "Notiz konnte nicht geteilt werden",
	Unsaved:        "Ungespeicherte Änderungen: Strg+S speichert, erneut Esc verwirft",
	Theme:          "Farbschema",
	SortOrder:      "Sortieren nach",
	SortUpdated:    "Zuletzt geändert",
	SortTitle:      "Titel",
	RenderMarkdown: "Markdown darstellen",
	On:             "an",
	Off:            "aus",
}

var french = Strings{
	Tag:            language.French,
	NewNote:        "Nouvelle note",
	Untitled:       "Sans titre",
	DeleteTitle:    "Supprimer la note",
	AreYouSure:     "Voulez-vous vraiment supprimer cette note ?",
	Delete:         "Supprimer",
	Cancel:         "Annuler",
	Settings:       "Paramètres",
	Notes:          "Notes",
	Loading:        "Chargement…",
	Saving:         "Enregistrement…",
	Deleting:       "Suppression…",
	EmptyList:      "Aucune note. Appuyez sur n pour en écrire une.",
	EmptyPreview:   "Sélectionnez une note pour l'afficher.",
	NotFound:       "Cette note n'existe plus ; nouvelle note créée.",
	LoadFailed:     "Impossible de charger la note",
	SaveFailed:     "Impossible d'enregistrer la note",
	DeleteFailed:   "Impossible de supprimer la note",
	Shared:         "Copié dans le presse-papiers",
	ShareFailed:    "Impossible de partager la note",
	Unsaved:        "Modifications non enregistrées : ctrl+s enregistre, échap à nouveau annule",
	Theme:          "Thème",
	SortOrder:      "Trier par",
	SortUpdated:    "Dernière modification",
	SortTitle:      "Titre",
	RenderMarkdown: "Afficher le Markdown",
	On:             "oui",
	Off:            "non",
}

var spanish = Strings{
	Tag:            language.Spanish,
	NewNote:        "Nota nueva",
	Untitled:       "Sin título",
	DeleteTitle:    "Eliminar nota",
	AreYouSure:     "¿Seguro que quieres eliminar esta nota?",
	Delete:         "Eliminar",
	Cancel:         "Cancelar",
	Settings:       "Ajustes",
	Notes:          "Notas",
	Loading:        "Cargando…",
	Saving:         "Guardando…",
	Deleting:       "Eliminando…",
	EmptyList:      "Aún no hay notas. Pulsa n para escribir una.",
	EmptyPreview:   "Selecciona una nota para verla.",
	NotFound:       "Esa nota ya no existe; se ha empezado una nueva.",
	LoadFailed:     "No se pudo cargar la nota",
	SaveFailed:     "No se pudo guardar la nota",
	DeleteFailed:   "No se pudo eliminar la nota",
	Shared:         "Copiado al portapapeles",
	ShareFailed:    "No se pudo compartir la nota",
	Unsaved:        "Cambios sin guardar: ctrl+s guarda, esc otra vez descarta",
	Theme:          "Tema",
	SortOrder:      "Ordenar por",
	SortUpdated:    "Última modificación",
	SortTitle:      "Título",
	RenderMarkdown: "Mostrar Markdown",
	On:             "sí",
	Off:            "no",
}

var (
	tables  = []Strings{english, german, french, spanish}
	matcher = language.NewMatcher([]language.Tag{
		language.English,
		language.German,
		language.French,
		language.Spanish,
	})
)

// For returns the table best matching locale. Unknown or empty locales get
// English. POSIX forms such as "de_DE.UTF-8" are accepted.
func For(locale string) Strings {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return english
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return english
	}
	return tables[idx]
}

// FromEnv resolves the locale from override, then LC_ALL, LC_MESSAGES and LANG.
func FromEnv(override string) Strings {
	if strings.TrimSpace(override) != "" {
		return For(override)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return For(v)
		}
	}
	return english
}

// English returns the default table.
func English() Strings {
	return english
}

// DisplayTitle substitutes the Untitled label for empty titles.
func (s Strings) DisplayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return s.Untitled
	}
	return title
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
