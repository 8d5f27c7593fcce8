package quiz

// Archetype is one of the four mutually exclusive primary skin-type
// classifications. Sensible is tracked as a score key alongside them but is
// an orthogonal trait, never a primary diagnosis.
type Archetype string

const (
	ArchetypeSeca     Archetype = "seca"
	ArchetypeGrasa    Archetype = "grasa"
	ArchetypeMixta    Archetype = "mixta"
	ArchetypeNormal   Archetype = "normal"
	ArchetypeSensible Archetype = "sensible"
)

// PrimaryArchetypes lists the primary archetypes in declaration order.
// The classifier's tie-break depends on this exact order.
var PrimaryArchetypes = []Archetype{ArchetypeSeca, ArchetypeGrasa, ArchetypeMixta, ArchetypeNormal}

type QuestionType string

const (
	QuestionTypeSingle QuestionType = "single"
	QuestionTypeMulti  QuestionType = "multi"
)

// Option is one selectable answer. Scoring options carry a partial
// archetype→points map; trait options carry a raw value tag. Exactly one of
// the two is meaningful per question.
type Option struct {
	ID     string
	Label  string
	Scores map[Archetype]int
	Value  string
}

type Question struct {
	ID       int
	Question string
	Type     QuestionType
	Options  []Option
}

// Option returns the option with the given id, or nil if the id is unknown.
func (q *Question) Option(optionID string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i]
		}
	}
	return nil
}

// Bank is the ordered, read-only question catalog. Question ids are 1-based,
// dense and match position.
type Bank struct {
	questions []Question
}

func NewBank(questions []Question) *Bank {
	return &Bank{questions: questions}
}

func (b *Bank) Size() int { return len(b.questions) }

// Question returns the question with the given 1-based id, or nil if out of
// range.
func (b *Bank) Question(id int) *Question {
	if id < 1 || id > len(b.questions) {
		return nil
	}
	return &b.questions[id-1]
}

// DiagnosticQuestionCount is how many leading questions feed the scoring
// engine. The remaining questions are trait questions.
const DiagnosticQuestionCount = 6

// Ids of the trait questions in the shipped content.
const (
	ConcernsQuestionID   = 7
	TextureQuestionID    = 8
	AgeRangeQuestionID   = 9
	ComplexityQuestionID = 10
)

var defaultBank = NewBank([]Question{
	{
		ID:       1,
		Question: "¿Cómo sientes tu piel al despertar?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "1a", Label: "Tirante y áspera", Scores: map[Archetype]int{ArchetypeSeca: 3}},
			{ID: "1b", Label: "Brillante en todo el rostro", Scores: map[Archetype]int{ArchetypeGrasa: 3}},
			{ID: "1c", Label: "Brillante solo en la zona T", Scores: map[Archetype]int{ArchetypeMixta: 3}},
			{ID: "1d", Label: "Cómoda y equilibrada", Scores: map[Archetype]int{ArchetypeNormal: 3}},
			{ID: "1e", Label: "Irritada o con picor", Scores: map[Archetype]int{ArchetypeSensible: 2}},
		},
	},
	{
		ID:       2,
		Question: "¿Cómo se ve tu piel al final del día?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "2a", Label: "Con descamación o tirantez", Scores: map[Archetype]int{ArchetypeSeca: 3}},
			{ID: "2b", Label: "Con exceso de grasa", Scores: map[Archetype]int{ArchetypeGrasa: 3}},
			{ID: "2c", Label: "Grasa en frente y nariz, seca en las mejillas", Scores: map[Archetype]int{ArchetypeMixta: 3}},
			{ID: "2d", Label: "Igual que por la mañana", Scores: map[Archetype]int{ArchetypeNormal: 3}},
			{ID: "2e", Label: "Enrojecida o reactiva", Scores: map[Archetype]int{ArchetypeSensible: 2}},
		},
	},
	{
		ID:       3,
		Question: "¿Con qué frecuencia te aparecen granitos o puntos negros?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "3a", Label: "Casi nunca, pero tengo zonas resecas", Scores: map[Archetype]int{ArchetypeSeca: 3}},
			{ID: "3b", Label: "Con mucha frecuencia", Scores: map[Archetype]int{ArchetypeGrasa: 3}},
			{ID: "3c", Label: "A veces, solo en la zona T", Scores: map[Archetype]int{ArchetypeMixta: 3}},
			{ID: "3d", Label: "Rara vez", Scores: map[Archetype]int{ArchetypeNormal: 3}},
			{ID: "3e", Label: "Cuando pruebo productos nuevos", Scores: map[Archetype]int{ArchetypeSensible: 2}},
		},
	},
	{
		ID:       4,
		Question: "¿Cómo son tus poros?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "4a", Label: "Casi invisibles, piel fina", Scores: map[Archetype]int{ArchetypeSeca: 3}},
			{ID: "4b", Label: "Visibles y abiertos en todo el rostro", Scores: map[Archetype]int{ArchetypeGrasa: 3}},
			{ID: "4c", Label: "Visibles solo en nariz y frente", Scores: map[Archetype]int{ArchetypeMixta: 3}},
			{ID: "4d", Label: "Finos y poco marcados", Scores: map[Archetype]int{ArchetypeNormal: 3}},
		},
	},
	{
		ID:       5,
		Question: "¿Cómo reacciona tu piel a productos nuevos?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "5a", Label: "Se reseca con facilidad", Scores: map[Archetype]int{ArchetypeSeca: 3}},
			{ID: "5b", Label: "Le salen granitos", Scores: map[Archetype]int{ArchetypeGrasa: 3}},
			{ID: "5c", Label: "Depende de la zona del rostro", Scores: map[Archetype]int{ArchetypeMixta: 3}},
			{ID: "5d", Label: "Los tolera bien", Scores: map[Archetype]int{ArchetypeNormal: 3}},
			{ID: "5e", Label: "Se irrita o enrojece casi siempre", Scores: map[Archetype]int{ArchetypeSensible: 1}},
		},
	},
	{
		ID:       6,
		Question: "¿Cómo luce tu piel en fotos con flash?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "6a", Label: "Opaca, sin brillo", Scores: map[Archetype]int{ArchetypeSeca: 3}},
			{ID: "6b", Label: "Con brillos en todo el rostro", Scores: map[Archetype]int{ArchetypeGrasa: 3}},
			{ID: "6c", Label: "Con brillos en frente y nariz", Scores: map[Archetype]int{ArchetypeMixta: 3}},
			{ID: "6d", Label: "Uniforme y sin brillos", Scores: map[Archetype]int{ArchetypeNormal: 3}},
			{ID: "6e", Label: "Con rojeces visibles", Scores: map[Archetype]int{ArchetypeSensible: 2}},
		},
	},
	{
		ID:       7,
		Question: "¿Cuáles son tus principales preocupaciones?",
		Type:     QuestionTypeMulti,
		Options: []Option{
			{ID: "7a", Label: "Granitos y acné", Value: "acne"},
			{ID: "7b", Label: "Manchas y tono desigual", Value: "manchas"},
			{ID: "7c", Label: "Líneas de expresión", Value: "antiedad"},
			{ID: "7d", Label: "Poros dilatados", Value: "poros"},
			{ID: "7e", Label: "Falta de hidratación", Value: "hidratacion"},
			{ID: "7f", Label: "Falta de luminosidad", Value: "luminosidad"},
		},
	},
	{
		ID:       8,
		Question: "¿Qué textura prefieres en tus productos?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "8a", Label: "Ligera, tipo gel", Value: "ligera"},
			{ID: "8b", Label: "Cremosa", Value: "cremosa"},
			{ID: "8c", Label: "Aceite o bálsamo", Value: "rica"},
			{ID: "8d", Label: "Me da igual", Value: "any"},
		},
	},
	{
		ID:       9,
		Question: "¿En qué rango de edad te encuentras?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "9a", Label: "Menos de 20", Value: "-20"},
			{ID: "9b", Label: "20 a 30", Value: "20-30"},
			{ID: "9c", Label: "30 a 40", Value: "30-40"},
			{ID: "9d", Label: "40 a 50", Value: "40-50"},
			{ID: "9e", Label: "Más de 50", Value: "50+"},
		},
	},
	{
		ID:       10,
		Question: "¿Cómo es tu rutina ideal?",
		Type:     QuestionTypeSingle,
		Options: []Option{
			{ID: "10a", Label: "Lo mínimo posible", Value: "minimal"},
			{ID: "10b", Label: "Pocos pasos pero efectivos", Value: "basic"},
			{ID: "10c", Label: "Una rutina completa", Value: "full"},
			{ID: "10d", Label: "Aún no lo sé", Value: "any"},
		},
	},
})

// DefaultBank returns the shipped ten-question bank. Callers must treat it as
// read-only; the engine's purity depends on it.
func DefaultBank() *Bank { return defaultBank }
