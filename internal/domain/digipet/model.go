package digipet

const (
	// MinStat y MaxStat acotan happiness, nutrition y discipline.
	MinStat = 0
	MaxStat = 100

	// InitialStat es el valor de cada stat al hacer hatch.
	InitialStat = 50
)

// Digipet es la mascota virtual. Hay como mucho una por proceso.
type Digipet struct {
	Happiness  int
	Nutrition  int
	Discipline int
}

// Initial devuelve la mascota recién nacida.
func Initial() Digipet {
	return Digipet{
		Happiness:  InitialStat,
		Nutrition:  InitialStat,
		Discipline: InitialStat,
	}
}

// Clamp deja cada stat dentro de [MinStat, MaxStat].
func (d Digipet) Clamp() Digipet {
	return Digipet{
		Happiness:  clampStat(d.Happiness),
		Nutrition:  clampStat(d.Nutrition),
		Discipline: clampStat(d.Discipline),
	}
}

func clampStat(v int) int {
	return min(max(v, MinStat), MaxStat)
}
