package events

import (
	"time"

	"digipet/internal/domain/digipet"
)

// Event es una entrada del journal: qué acción se aplicó y cómo quedó la mascota.
// En rehome, las stats son las de la mascota entregada.
type Event struct {
	ID     string
	Action digipet.Action

	Happiness  int
	Nutrition  int
	Discipline int

	OccurredAt time.Time
}

func (e Event) Digipet() digipet.Digipet {
	return digipet.Digipet{
		Happiness:  e.Happiness,
		Nutrition:  e.Nutrition,
		Discipline: e.Discipline,
	}
}
