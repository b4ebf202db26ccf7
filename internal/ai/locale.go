package ai

import (
	"fmt"
	"regexp"
	"strings"
)

// The analysis prompt asks the model to keep [Priority:...] [Type:...] tags
// in English, but models routinely translate them anyway. The tables below
// are a tolerance layer: each supported locale contributes a bracket-tag
// pattern, and extracted tokens are normalized back to the fixed English
// vocabulary.

// tagPattern matches one suggestion line for a given pair of tag words
type tagPattern struct {
	locale string
	re     *regexp.Regexp
}

// buildTagPattern compiles a pattern for "[<prio>:x] [<typ>:y] - text"
func buildTagPattern(locale, prioWord, typeWord string) tagPattern {
	expr := fmt.Sprintf(
		`(?i)\[\s*%s\s*:\s*([^\]]+)\]\s*\[\s*%s\s*:\s*([^\]]+)\]\s*[-–:]?\s*(.+)`,
		prioWord, typeWord,
	)
	return tagPattern{locale: locale, re: regexp.MustCompile(expr)}
}

// tagPatterns is tried in order; English first since that is what the
// prompt requests
var tagPatterns = []tagPattern{
	buildTagPattern("en", "Priority", "Type"),
	buildTagPattern("es", "Prioridad", "Tipo"),
	buildTagPattern("pt", "Prioridade", "Tipo"),
	buildTagPattern("fr", "Priorit[ée]", "Type"),
	buildTagPattern("de", "Priorit[äa]t", "Typ"),
	buildTagPattern("it", "Priorit[àa]", "Tipo"),
	buildTagPattern("pl", "Priorytet", "Typ"),
	buildTagPattern("tr", "[ÖO]ncelik", "T[üu]r"),
}

// priorityVocab maps lowercased priority tokens from all supported locales
// to the English vocabulary
var priorityVocab = map[string]Priority{
	"high":    PriorityHigh,
	"alta":    PriorityHigh,
	"alto":    PriorityHigh,
	"haute":   PriorityHigh,
	"élevée":  PriorityHigh,
	"elevée":  PriorityHigh,
	"hoch":    PriorityHigh,
	"wysoki":  PriorityHigh,
	"wysoka":  PriorityHigh,
	"yüksek":  PriorityHigh,
	"medium":  PriorityMedium,
	"media":   PriorityMedium,
	"média":   PriorityMedium,
	"médio":   PriorityMedium,
	"medio":   PriorityMedium,
	"moyenne": PriorityMedium,
	"moyen":   PriorityMedium,
	"mittel":  PriorityMedium,
	"średni":  PriorityMedium,
	"średnia": PriorityMedium,
	"orta":    PriorityMedium,
	"low":     PriorityLow,
	"baja":    PriorityLow,
	"bajo":    PriorityLow,
	"baixa":   PriorityLow,
	"baixo":   PriorityLow,
	"basse":   PriorityLow,
	"bas":     PriorityLow,
	"niedrig": PriorityLow,
	"bassa":   PriorityLow,
	"basso":   PriorityLow,
	"niski":   PriorityLow,
	"niska":   PriorityLow,
	"düşük":   PriorityLow,
}

// typeVocab maps lowercased type tokens from all supported locales to the
// English vocabulary
var typeVocab = map[string]SuggestionType{
	"content":       TypeContent,
	"contenido":     TypeContent,
	"conteúdo":      TypeContent,
	"contenu":       TypeContent,
	"inhalt":        TypeContent,
	"contenuto":     TypeContent,
	"treść":         TypeContent,
	"içerik":        TypeContent,
	"formatting":    TypeFormatting,
	"formato":       TypeFormatting,
	"formatação":    TypeFormatting,
	"mise en forme": TypeFormatting,
	"formatierung":  TypeFormatting,
	"formattazione": TypeFormatting,
	"formatowanie":  TypeFormatting,
	"biçim":         TypeFormatting,
	"skills":        TypeSkills,
	"habilidades":   TypeSkills,
	"compétences":   TypeSkills,
	"fähigkeiten":   TypeSkills,
	"competenze":    TypeSkills,
	"umiejętności":  TypeSkills,
	"beceriler":     TypeSkills,
	"experience":    TypeExperience,
	"experiencia":   TypeExperience,
	"experiência":   TypeExperience,
	"expérience":    TypeExperience,
	"erfahrung":     TypeExperience,
	"esperienza":    TypeExperience,
	"doświadczenie": TypeExperience,
	"deneyim":       TypeExperience,
	"general":       TypeGeneral,
	"geral":         TypeGeneral,
	"général":       TypeGeneral,
	"générale":      TypeGeneral,
	"allgemein":     TypeGeneral,
	"generale":      TypeGeneral,
	"ogólne":        TypeGeneral,
	"ogólny":        TypeGeneral,
	"genel":         TypeGeneral,
}

// NormalizePriority maps a tag token in any supported language to the
// English priority vocabulary. Unrecognized tokens default to Medium;
// a matched suggestion is never discarded over an unknown tag.
func NormalizePriority(token string) Priority {
	if p, ok := priorityVocab[normalizeToken(token)]; ok {
		return p
	}
	return PriorityMedium
}

// NormalizeType maps a tag token in any supported language to the English
// type vocabulary, defaulting to General.
func NormalizeType(token string) SuggestionType {
	if t, ok := typeVocab[normalizeToken(token)]; ok {
		return t
	}
	return TypeGeneral
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
