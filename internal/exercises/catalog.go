// ABOUTME: Read-only exercise catalog mapping muscle groups to canonical names.
// ABOUTME: Used for entry validation and autocomplete, never for aggregation correctness.
package exercises

import "github.com/JaumCarvalho/iron-tracker/internal/models"

// Catalog maps each muscle group to its canonical exercise names.
var Catalog = map[models.MuscleGroup][]string{
	models.GroupPeito: {
		"Supino Reto (Barra)",
		"Supino Inclinado (Halteres)",
		"Supino Declinado",
		"Crucifixo",
		"Flexão de Braço",
		"Crossover (Polia)",
		"Voador (Peck Deck)",
	},
	models.GroupCostas: {
		"Levantamento Terra",
		"Barra Fixa",
		"Puxada Alta",
		"Remada Curvada",
		"Remada Sentada",
		"Serrote (Unilateral)",
		"Pull-down",
	},
	models.GroupPernas: {
		"Agachamento Livre",
		"Leg Press 45º",
		"Cadeira Extensora",
		"Mesa Flexora",
		"Stiff",
		"Afundo / Passada",
		"Elevação Pélvica",
		"Panturrilha em Pé",
	},
	models.GroupOmbros: {
		"Desenvolvimento Militar",
		"Elevação Lateral",
		"Elevação Frontal",
		"Crucifixo Inverso",
		"Encolhimento",
	},
	models.GroupBracos: {
		"Rosca Direta",
		"Rosca Martelo",
		"Rosca Scott",
		"Tríceps Testa",
		"Tríceps Corda",
		"Tríceps Francês",
		"Mergulho",
	},
	models.GroupAbdomen: {
		"Abdominal Supra",
		"Prancha Isométrica",
		"Elevação de Pernas",
		"Abdominal Infra",
	},
	models.GroupCardio: {
		"Esteira",
		"Bicicleta",
		"Elíptico",
		"Pular Corda",
	},
	models.GroupOutros: {},
}

// GroupOf returns the catalog group for an exercise name. Unknown
// names fall under Outros: free-form entries are allowed, the catalog
// only informs grouping.
func GroupOf(name string) models.MuscleGroup {
	for group, names := range Catalog {
		for _, n := range names {
			if n == name {
				return group
			}
		}
	}
	return models.GroupOutros
}

// Known reports whether a name is in the catalog.
func Known(name string) bool {
	return GroupOf(name) != models.GroupOutros || contains(Catalog[models.GroupOutros], name)
}

// Names returns the catalog entries for a group.
func Names(group models.MuscleGroup) []string {
	out := make([]string, len(Catalog[group]))
	copy(out, Catalog[group])
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
