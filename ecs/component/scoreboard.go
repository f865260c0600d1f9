package component

// Scoreboard is the run record kept on the arena entity.
type Scoreboard struct {
	Survived float64
	Kills    int
	Over     bool
}

var ScoreboardComponent = NewComponent[Scoreboard]()
