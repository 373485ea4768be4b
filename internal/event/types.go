// internal/event/types.go
package event

const (
	HexSelected EventType = "HexSelected" // Data: hexmap.Cell
	TurnEnded   EventType = "TurnEnded"   // Data: TurnInfo
)

// TurnInfo is the payload of TurnEnded: the turn that just began and whose
// move it is.
type TurnInfo struct {
	Turn   int
	Player int
}
