package component

import "github.com/milk9111/hammerjam/nav"

// NavMesh is the arena's walkable surface. One lives on the arena entity.
type NavMesh struct {
	Mesh *nav.Mesh
}

var NavMeshComponent = NewComponent[NavMesh]()
