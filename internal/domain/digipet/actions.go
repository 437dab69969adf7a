package digipet

import "fmt"

// Action identifica una interacción del usuario con la mascota.
type Action string

const (
	ActionHatch  Action = "hatch"
	ActionWalk   Action = "walk"
	ActionFeed   Action = "feed"
	ActionTrain  Action = "train"
	ActionIgnore Action = "ignore"
	ActionRehome Action = "rehome"
)

// Delta es el cambio que una acción aplica sobre cada stat.
type Delta struct {
	Happiness  int
	Nutrition  int
	Discipline int
}

// Deltas de las acciones que modifican stats (hatch y rehome no pasan por acá).
var deltas = map[Action]Delta{
	ActionWalk:   {Happiness: 10, Nutrition: -5},
	ActionFeed:   {Nutrition: 10, Discipline: -5},
	ActionTrain:  {Discipline: 10, Happiness: -5},
	ActionIgnore: {Happiness: -10, Nutrition: -10, Discipline: -10},
}

// DeltaOf devuelve el delta de la acción; ok=false si la acción no modifica stats.
func DeltaOf(a Action) (Delta, bool) {
	d, ok := deltas[a]
	return d, ok
}

// Apply suma el delta y acota el resultado. Es total: nunca falla.
func (d Digipet) Apply(delta Delta) Digipet {
	return Digipet{
		Happiness:  d.Happiness + delta.Happiness,
		Nutrition:  d.Nutrition + delta.Nutrition,
		Discipline: d.Discipline + delta.Discipline,
	}.Clamp()
}

// Ignore baja las tres stats en 10, con piso en 0.
func Ignore(d Digipet) Digipet { return d.Apply(deltas[ActionIgnore]) }

// Walk sube happiness y baja un poco nutrition.
func Walk(d Digipet) Digipet { return d.Apply(deltas[ActionWalk]) }

// Feed sube nutrition y baja un poco discipline.
func Feed(d Digipet) Digipet { return d.Apply(deltas[ActionFeed]) }

// Train sube discipline y baja un poco happiness.
func Train(d Digipet) Digipet { return d.Apply(deltas[ActionTrain]) }

// ParseAction valida un nombre de acción recibido por query/CLI.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionHatch, ActionWalk, ActionFeed, ActionTrain, ActionIgnore, ActionRehome:
		return a, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}
