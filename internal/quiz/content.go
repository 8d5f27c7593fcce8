package quiz

// SkinTypeContent is the display copy for one classified skin type: headline,
// description, care tip and the ordered routine steps rendered on the result
// screen. The same table drives downstream product filtering copy.
type SkinTypeContent struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tip          string   `json:"tip"`
	RoutineSteps []string `json:"routine_steps"`
}

// SensitiveAdvisory is appended to the result copy when the sensitivity trait
// is set, whatever the primary type.
const SensitiveAdvisory = "Tu piel es sensible: introduce los productos nuevos de uno en uno y evita fragancias y alcoholes fuertes."

var skinTypeContent = map[Archetype]SkinTypeContent{
	ArchetypeSeca: {
		Title:       "Piel Seca",
		Description: "Tu piel produce menos sebo del necesario y tiende a la tirantez, la descamación y la falta de confort.",
		Tip:         "Evita limpiadores espumosos agresivos y el agua muy caliente; sella la hidratación con una crema rica por la noche.",
		RoutineSteps: []string{
			"Limpiador cremoso sin sulfatos",
			"Tónico hidratante sin alcohol",
			"Sérum con ácido hialurónico",
			"Crema nutritiva con ceramidas",
			"Protector solar hidratante",
		},
	},
	ArchetypeGrasa: {
		Title:       "Piel Grasa",
		Description: "Tu piel produce sebo en exceso: brillos generalizados, poros visibles y tendencia a las imperfecciones.",
		Tip:         "No sobre-limpies: retirar toda la grasa dispara un efecto rebote. Busca texturas gel y fórmulas no comedogénicas.",
		RoutineSteps: []string{
			"Gel limpiador suave",
			"Tónico con niacinamida",
			"Sérum con ácido salicílico",
			"Hidratante ligera oil-free",
			"Protector solar en gel",
		},
	},
	ArchetypeMixta: {
		Title:       "Piel Mixta",
		Description: "Tu zona T produce más sebo que el resto del rostro: brillos en frente y nariz con mejillas normales o secas.",
		Tip:         "Trata cada zona según lo que pide: texturas ligeras en la zona T y más nutrición puntual en las mejillas.",
		RoutineSteps: []string{
			"Limpiador equilibrante",
			"Tónico suave sin alcohol",
			"Sérum de niacinamida en la zona T",
			"Hidratante ligera en todo el rostro",
			"Protector solar de acabado seco",
		},
	},
	ArchetypeNormal: {
		Title:       "Piel Normal",
		Description: "Tu piel está equilibrada: ni exceso de grasa ni tirantez, poros finos y buena tolerancia a los productos.",
		Tip:         "Mantén el equilibrio: constancia con lo básico y protector solar a diario valen más que rutinas largas.",
		RoutineSteps: []string{
			"Limpiador suave",
			"Sérum antioxidante con vitamina C",
			"Hidratante ligera",
			"Protector solar diario",
		},
	},
}

// ContentFor maps a classified result to its display copy. Unknown labels
// fall back to the seca copy, mirroring the classifier's own fall-through.
func ContentFor(result Result) SkinTypeContent {
	for archetype, label := range skinTypeLabels {
		if label == result.SkinType {
			return skinTypeContent[archetype]
		}
	}
	return skinTypeContent[ClassifyDefault]
}
