package tags

import "github.com/yohamta/donburi"

var (
	Project = donburi.NewTag().SetName("Project")
	Pointer = donburi.NewTag().SetName("Pointer")
	Header  = donburi.NewTag().SetName("Header")
)

// Resolv tags for hit testing
const (
	ResolvCard   = "card"
	ResolvCursor = "cursor"
	ResolvHeader = "header"
	ResolvCentre = "header-centre"
)
