package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type ArenaTag struct{}

var ArenaTagComponent = NewComponent[ArenaTag]()
