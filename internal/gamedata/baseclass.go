package gamedata

// Base class ids of the gear categories whose slot restrictions are patched.
const (
	BaseClassHeadwear   = "5a341c4086f77401f2541505"
	BaseClassHeadphones = "5645bcb74bdc2ded0b8b4578"
	BaseClassFaceCover  = "5a341c4686f77469e155819e"
	BaseClassVisors     = "5448e5724bdc2ddf718b4568"
)

// Template types. Nodes group templates into the class hierarchy, Items
// are the concrete templates.
const (
	TypeItem = "Item"
	TypeNode = "Node"
)

// IsObjectID reports whether s is a 24 digit lowercase hex object id.
func IsObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
